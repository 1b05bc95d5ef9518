package model

import (
	"fmt"
	"strings"
)

// SortKey names the deal column a table is ordered by.
type SortKey string

// Sortable columns.
const (
	SortByTitle    SortKey = "title"
	SortByPlatform SortKey = "platform"
	SortByPrice    SortKey = "price"
	SortByDiscount SortKey = "discount"
	SortByStore    SortKey = "store"
)

// SortKeys lists the sortable columns in table order.
var SortKeys = []SortKey{SortByTitle, SortByPlatform, SortByPrice, SortByDiscount, SortByStore}

// ParseSortKey converts a column name into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys {
		if k == key {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortSpec is the active ordering of a deal table.
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSortSpec orders by title, ascending.
func DefaultSortSpec() SortSpec {
	return SortSpec{Key: SortByTitle, Direction: Ascending}
}

// Next returns the spec that results from activating the given column:
// the same column toggles direction, a new column starts ascending.
func (s SortSpec) Next(key SortKey) SortSpec {
	if key == s.Key {
		return SortSpec{Key: key, Direction: s.Direction.Toggle()}
	}
	return SortSpec{Key: key, Direction: Ascending}
}

func (s SortSpec) String() string {
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}

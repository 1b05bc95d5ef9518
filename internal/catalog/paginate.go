package catalog

import (
	"fmt"

	"github.com/Veraticus/dealscope/internal/model"
)

// Page sizes used by the deal tables.
const (
	MainPageSize    = 20
	PopularPageSize = 10
)

// windowThreshold is the largest page count shown without an ellipsis.
const windowThreshold = 7

// Page is one slice of a paginated deal list.
type Page struct {
	Items     []model.Deal
	Page      int
	PageCount int
	PageSize  int
	Total     int
}

// Paginate returns the 1-based page of deals. A page outside 1..PageCount
// yields no items rather than an error.
func Paginate(deals []model.Deal, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = MainPageSize
	}

	p := Page{
		Page:      page,
		PageSize:  pageSize,
		Total:     len(deals),
		PageCount: PageCount(len(deals), pageSize),
		Items:     []model.Deal{},
	}

	if page < 1 {
		return p
	}

	start := (page - 1) * pageSize
	if start >= len(deals) {
		return p
	}
	end := min(start+pageSize, len(deals))

	p.Items = deals[start:end]
	return p
}

// PageCount returns ceil(total / pageSize).
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool {
	return p.Page < p.PageCount
}

// Label renders the simple "Page N of M" pager text.
func (p Page) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Page, p.PageCount)
}

// PageLink is one entry of a page window: a page number or an ellipsis.
type PageLink struct {
	Page     int
	Ellipsis bool
	Current  bool
}

func (l PageLink) String() string {
	if l.Ellipsis {
		return "…"
	}
	return fmt.Sprintf("%d", l.Page)
}

// Window returns the page links to show for the current page. The first and
// last page are always present; at most seven numbered links are returned
// no matter how many pages exist.
func Window(current, pageCount int) []PageLink {
	if pageCount <= 0 {
		return nil
	}

	var pages []int
	switch {
	case pageCount <= windowThreshold:
		pages = pageRange(1, pageCount)
	case current <= 3:
		pages = append(pageRange(1, 5), 0, pageCount)
	case current >= pageCount-2:
		pages = append([]int{1, 0}, pageRange(pageCount-4, pageCount)...)
	default:
		pages = append([]int{1, 0}, pageRange(current-2, current+2)...)
		pages = append(pages, 0, pageCount)
	}

	links := make([]PageLink, 0, len(pages))
	for _, n := range pages {
		if n == 0 {
			links = append(links, PageLink{Ellipsis: true})
			continue
		}
		links = append(links, PageLink{Page: n, Current: n == current})
	}
	return links
}

func pageRange(from, to int) []int {
	pages := make([]int, 0, to-from+1)
	for n := from; n <= to; n++ {
		pages = append(pages, n)
	}
	return pages
}

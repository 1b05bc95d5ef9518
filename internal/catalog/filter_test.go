package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	deals := testDeals()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{
			name: "empty term keeps everything in order",
			term: "",
			want: titles(deals),
		},
		{
			name: "whitespace term is empty",
			term: "   ",
			want: titles(deals),
		},
		{
			name: "case insensitive substring",
			term: "RESIDENT",
			want: []string{"Resident Evil 4", "Resident Evil Village Gold Edition"},
		},
		{
			name: "trimmed",
			term: "  knight ",
			want: []string{"Hollow Knight"},
		},
		{
			name: "store is not searched",
			term: "steam",
			want: []string{},
		},
		{
			name: "no match",
			term: "zelda",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(deals, tt.term)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilter_EveryResultContainsTerm(t *testing.T) {
	deals := testDeals()
	for _, term := range []string{"e", "evil", "an", "1800", "x"} {
		got := Filter(deals, term)
		kept := map[string]bool{}
		for _, d := range got {
			kept[d.Title] = true
			assert.Contains(t, strings.ToLower(d.Title), term)
		}
		for _, d := range deals {
			if !kept[d.Title] {
				assert.NotContains(t, strings.ToLower(d.Title), term)
			}
		}
	}
}

func TestFilter_ReturnsNewSlice(t *testing.T) {
	deals := testDeals()
	got := Filter(deals, "")
	got[0].Title = "changed"
	assert.Equal(t, "Hollow Knight", deals[0].Title)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		oldPrice float64
		want     int
	}{
		{name: "twenty percent", price: 40, oldPrice: 50, want: 20},
		{name: "free", price: 0, oldPrice: 100, want: 100},
		{name: "no discount", price: 19.99, oldPrice: 19.99, want: 0},
		{name: "rounds half up", price: 8.75, oldPrice: 10, want: 13},
		{name: "rounds down", price: 6.67, oldPrice: 10, want: 33},
		{name: "zero old price", price: 5, oldPrice: 0, want: 0},
		{name: "price above old price passes through", price: 60, oldPrice: 50, want: -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.price, tt.oldPrice))
		})
	}
}

func TestDeal_DiscountMatchesFormula(t *testing.T) {
	d := Deal{Title: "Hades", Price: 12.49, OldPrice: 24.99}
	assert.Equal(t, DiscountPercent(12.49, 24.99), d.Discount())
	assert.Equal(t, 50, d.Discount())
}

func TestDeal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		deal    Deal
		wantErr bool
	}{
		{name: "valid", deal: Deal{Title: "Celeste", Price: 4.99, OldPrice: 19.99}},
		{name: "free game", deal: Deal{Title: "Celeste", Price: 0, OldPrice: 19.99}},
		{name: "missing title", deal: Deal{Price: 1, OldPrice: 2}, wantErr: true},
		{name: "negative price", deal: Deal{Title: "x", Price: -1, OldPrice: 2}, wantErr: true},
		{name: "zero old price", deal: Deal{Title: "x", Price: 1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.deal.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSortSpec_Next(t *testing.T) {
	spec := DefaultSortSpec()
	assert.Equal(t, SortSpec{Key: SortByTitle, Direction: Ascending}, spec)

	spec = spec.Next(SortByTitle)
	assert.Equal(t, Descending, spec.Direction)

	spec = spec.Next(SortByTitle)
	assert.Equal(t, Ascending, spec.Direction)

	spec = spec.Next(SortByDiscount)
	assert.Equal(t, SortSpec{Key: SortByDiscount, Direction: Ascending}, spec)
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey(" Discount ")
	assert.NoError(t, err)
	assert.Equal(t, SortByDiscount, key)

	_, err = ParseSortKey("rating")
	assert.Error(t, err)
}

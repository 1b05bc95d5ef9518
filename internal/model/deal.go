// Package model defines the deal record and how deal lists are sorted.
package model

import (
	"fmt"
	"math"
)

// Deal is one priced game listing as published in the deal catalog.
type Deal struct {
	Title    string  `json:"title"`
	Platform string  `json:"platform"`
	Store    string  `json:"store"`
	URL      string  `json:"url"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldPrice"`
	Featured bool    `json:"featured"`
}

// DiscountPercent returns the savings of price against oldPrice as a whole
// percentage. Every caller that needs a discount goes through here.
//
// A non-positive oldPrice yields 0. An oldPrice below price is passed through
// as a negative discount.
func DiscountPercent(price, oldPrice float64) int {
	if oldPrice <= 0 {
		return 0
	}
	return int(math.Round((oldPrice - price) / oldPrice * 100))
}

// Discount returns the deal's discount percentage.
func (d Deal) Discount() int {
	return DiscountPercent(d.Price, d.OldPrice)
}

// Savings returns the absolute amount saved against the original price.
func (d Deal) Savings() float64 {
	return d.OldPrice - d.Price
}

// Validate ensures the Deal has the fields the catalog relies on.
func (d Deal) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("deal title is required")
	}
	if d.Price < 0 {
		return fmt.Errorf("deal %q: price must be >= 0, got %.2f", d.Title, d.Price)
	}
	if d.OldPrice <= 0 {
		return fmt.Errorf("deal %q: oldPrice must be > 0, got %.2f", d.Title, d.OldPrice)
	}
	return nil
}

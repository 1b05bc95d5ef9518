package cheapshark

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PriceText is a price as the API sent it. It accepts a JSON string, a
// number or null so one odd record cannot fail a whole page; parsing
// happens per deal in the pipeline.
type PriceText string

// UnmarshalJSON keeps the raw text of any scalar.
func (p *PriceText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PriceText(s)
		return nil
	}
	*p = PriceText(data)
	return nil
}

// Decimal parses the price.
func (p PriceText) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(p))
}

// RawDeal is one entry of the CheapShark deals listing.
type RawDeal struct {
	Title       string    `json:"title"`
	DealID      string    `json:"dealID"`
	StoreID     string    `json:"storeID"`
	Thumb       string    `json:"thumb"`
	SalePrice   PriceText `json:"salePrice"`
	NormalPrice PriceText `json:"normalPrice"`
	Savings     PriceText `json:"savings"`
}

// pricedDeal is a RawDeal whose prices parsed.
type pricedDeal struct {
	RawDeal
	sale    decimal.Decimal
	normal  decimal.Decimal
	savings decimal.Decimal
}

func parsePrices(d RawDeal) (pricedDeal, error) {
	p := pricedDeal{RawDeal: d}
	var err error
	if p.sale, err = d.SalePrice.Decimal(); err != nil {
		return p, err
	}
	if p.normal, err = d.NormalPrice.Decimal(); err != nil {
		return p, err
	}
	if p.savings, err = d.Savings.Decimal(); err != nil {
		return p, err
	}
	return p, nil
}

type rawStore struct {
	StoreID   string `json:"storeID"`
	StoreName string `json:"storeName"`
}

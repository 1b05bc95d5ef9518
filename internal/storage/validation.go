// Package storage provides the local SQLite deal catalog.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/dealscope/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidDeal  = errors.New("invalid deal")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateDeals validates a slice of deals.
func validateDeals(deals []model.Deal) error {
	if deals == nil {
		return fmt.Errorf("%w: deals", ErrNilParameter)
	}
	for i, d := range deals {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%w at index %d: %w", ErrInvalidDeal, i, err)
		}
	}
	return nil
}

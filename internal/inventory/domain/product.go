package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is a catalog item that orders reference by ID.
type Product struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Weight      decimal.NullDecimal `json:"weight"`
	Height      decimal.NullDecimal `json:"height"`
	Width       decimal.NullDecimal `json:"width"`
	Length      decimal.NullDecimal `json:"length"`
}

// Validate ensures the product adheres to business constraints.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	for _, m := range []struct {
		field string
		value decimal.NullDecimal
	}{
		{"weight", p.Weight},
		{"height", p.Height},
		{"width", p.Width},
		{"length", p.Length},
	} {
		if m.value.Valid && m.value.Decimal.IsNegative() {
			return errors.New(m.field + " must not be negative")
		}
	}
	return nil
}

package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when two amounts with different
// currency codes are compared or combined.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// CurrencyAmount pairs a non-negative decimal magnitude with a
// currency code. Comparison and arithmetic require matching currencies.
type CurrencyAmount struct {
	Value    decimal.Decimal
	Currency Currency
}

// NewAmount creates a CurrencyAmount from a decimal value.
func NewAmount(value decimal.Decimal, currency Currency) CurrencyAmount {
	return CurrencyAmount{Value: value, Currency: currency}
}

// ParseAmount parses a decimal string into a CurrencyAmount.
// Negative magnitudes are rejected.
func ParseAmount(s string, currency Currency) (CurrencyAmount, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return CurrencyAmount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v.IsNegative() {
		return CurrencyAmount{}, fmt.Errorf("negative amount %q", s)
	}
	return CurrencyAmount{Value: v, Currency: currency}, nil
}

// Cmp compares two amounts of the same currency. It returns -1, 0, or
// 1, or ErrCurrencyMismatch when the currency codes differ.
func (a CurrencyAmount) Cmp(b CurrencyAmount) (int, error) {
	if a.Currency != b.Currency {
		return 0, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.Currency, b.Currency)
	}
	return a.Value.Cmp(b.Value), nil
}

// Add returns the sum of two amounts of the same currency.
func (a CurrencyAmount) Add(b CurrencyAmount) (CurrencyAmount, error) {
	if a.Currency != b.Currency {
		return CurrencyAmount{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, a.Currency, b.Currency)
	}
	return CurrencyAmount{Value: a.Value.Add(b.Value), Currency: a.Currency}, nil
}

// Equal reports whether two amounts have the same currency and equal
// magnitudes. Magnitude equality ignores trailing zeros (5 == 5.0).
func (a CurrencyAmount) Equal(b CurrencyAmount) bool {
	return a.Currency == b.Currency && a.Value.Equal(b.Value)
}

// IsZero reports whether the magnitude is zero.
func (a CurrencyAmount) IsZero() bool {
	return a.Value.IsZero()
}

// IsPositive reports whether the magnitude is greater than zero.
func (a CurrencyAmount) IsPositive() bool {
	return a.Value.IsPositive()
}

// String renders the amount as "<value> <currency>", e.g. "5 EUR".
// Trailing zeros are not preserved.
func (a CurrencyAmount) String() string {
	return a.Value.String() + " " + string(a.Currency)
}

// Package types provides common value types used across the invoicing module.
package types

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value in cents. All arithmetic is
// integer-only — no floating point. Amounts cross the wire as plain JSON
// numbers with at most two decimal places ("10.5", "100"), matching what
// the web client sends and displays.
//
// Examples:
//   - Cents(4900) = $49.00
//   - Cents(1050) = $10.50
type Money struct {
	cents int64
}

// Cents creates a Money value from an amount in cents.
func Cents(n int64) Money { return Money{cents: n} }

// FromDecimal converts an exact decimal amount into Money.
// Amounts with more than two decimal places are rejected.
func FromDecimal(d decimal.Decimal) (Money, error) {
	shifted := d.Shift(2)
	if !shifted.IsInteger() {
		return Money{}, fmt.Errorf("money: amount %s has more than two decimal places", d)
	}
	return Money{cents: shifted.IntPart()}, nil
}

// ParseAmount parses a decimal string ("10.50") into Money.
func ParseAmount(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return FromDecimal(d)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 { return m.cents }

// Decimal returns the amount as an exact decimal in major units.
func (m Money) Decimal() decimal.Decimal { return decimal.New(m.cents, -2) }

// Arithmetic operations

// Add adds two Money values.
func (m Money) Add(other Money) Money { return Money{cents: m.cents + other.cents} }

// Subtract subtracts another Money value.
func (m Money) Subtract(other Money) Money { return Money{cents: m.cents - other.cents} }

// Comparison methods

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool { return m.cents == 0 }

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool { return m.cents < 0 }

// Equal returns true if both Money values are equal.
func (m Money) Equal(other Money) bool { return m.cents == other.cents }

// Formatting methods

// FormatMajor returns the major unit string without a currency symbol,
// always with two decimal places: "49.00" for Cents(4900).
func (m Money) FormatMajor() string {
	return m.Decimal().StringFixed(2)
}

// String returns a human-readable string: "$49.00".
func (m Money) String() string { return "$" + m.FormatMajor() }

// MarshalJSON implements json.Marshaler. Money is encoded as a bare JSON
// number in major units: Cents(1050) -> 10.5.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. Accepts a JSON number or a
// numeric string; anything else, or more than two decimal places, is an
// error.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		*m = Money{}
		return nil
	}

	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// Package money provides an exact decimal amount used for every balance and
// posting in the ledger. Amounts are built from decimal strings or integers,
// never from binary floating point.
package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of decimal places Scale rounds to.
// Eight places covers satoshi precision for BTC.
const DefaultPlaces int32 = 8

// Money is an arbitrary-precision decimal amount. The zero value is 0.
type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func FromInt(v int64) Money {
	return Money{amount: decimal.NewFromInt(v)}
}

// ErrExponent is returned for scientific notation such as "1e999999999".
var ErrExponent = errors.New("exponent notation is not allowed")

// Parse reads a decimal literal such as "320.85" or "-4.5".
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero(), nil
	}

	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrExponent
	}
	return decimal.NewFromString(s)
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseRate reads a multiplication rate such as a fee rate ("0.006").
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := parseDecimal(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	return d, nil
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Scale multiplies by rate and rounds half-to-even to DefaultPlaces.
func (m Money) Scale(rate decimal.Decimal) Money {
	return m.ScaleTo(rate, DefaultPlaces)
}

// ScaleTo multiplies by rate and rounds half-to-even (banker's rounding)
// to the given number of decimal places.
func (m Money) ScaleTo(rate decimal.Decimal, places int32) Money {
	return Money{amount: m.amount.Mul(rate).RoundBank(places)}
}

// Equal compares numerically, so 500 equals 500.00.
func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) String() string {
	return m.amount.String()
}

// StringFixed formats with exactly places digits after the decimal point.
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value stores the amount as decimal TEXT.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

func (m *Money) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("failed to scan amount: %w", err)
	}
	m.amount = d
	return nil
}

package entity

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// minorDigits is the number of fractional digits kept for every amount.
const minorDigits = 2

var (
	ErrAmountFormat    = errors.New("amount is not a number")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")
	ErrAmountRange     = errors.New("amount is too large")
)

// MaxMoney is the largest amount a Money value or a balance can hold.
const MaxMoney = Money(math.MaxInt64)

var maxMinor = decimal.NewFromInt(int64(MaxMoney))

// Money is an amount in minor units (centavos). Balances never go below zero,
// but Money itself is signed so invalid input can be represented and rejected.
type Money int64

// NewMoney builds Money from whole major units.
func NewMoney(major int64) Money {
	return Money(major * 100)
}

// ParseMoney parses a decimal string such as "500", "500.5" or "1,000.25".
func ParseMoney(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, ErrAmountFormat
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountFormat, s)
	}

	minor := d.Shift(minorDigits)
	if !minor.IsInteger() {
		return 0, ErrAmountPrecision
	}
	if minor.Abs().GreaterThan(maxMinor) {
		return 0, ErrAmountRange
	}

	return Money(minor.IntPart()), nil
}

// MustParseMoney is ParseMoney for literals known to be valid.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -minorDigits)
}

// String renders the amount with exactly two decimals, e.g. "500.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(minorDigits)
}

// Format renders the amount prefixed by a currency code, e.g. "PHP500.00".
func (m Money) Format(currency string) string {
	return currency + m.String()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m > 0
}

// CanAdd reports whether m+other stays within MaxMoney. Both must be non-negative.
func (m Money) CanAdd(other Money) bool {
	return other <= MaxMoney-m
}

// IsMultipleOf reports whether m is an exact multiple of step. A non-positive
// step means no restriction.
func (m Money) IsMultipleOf(step Money) bool {
	if step <= 0 {
		return true
	}
	return m%step == 0
}

package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedAmount = errors.New("malformed monetary amount")
	ErrNegativeAmount  = errors.New("amount cannot be negative")
)

// Money is a 2-decimal quantized monetary value. The only place fractional
// precision beyond 2 digits is allowed is the prorated time-unit multiplier,
// which is a plain decimal, not Money.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(2)}
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero.Round(2)}
}

// ParseMoney accepts a decimal string with an optional leading currency
// symbol ("$12.50" or "12.50"). Anything that is not valid decimal text
// after stripping the symbol is rejected, never coerced.
func ParseMoney(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)
	negative := strings.HasPrefix(trimmed, "-")
	trimmed = strings.TrimPrefix(trimmed, "-")
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return Money{}, ErrMalformedAmount
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil || d.IsNegative() {
		return Money{}, ErrMalformedAmount
	}
	if negative {
		d = d.Neg()
	}
	return Money{amount: d.Round(2)}, nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount).Round(2)}
}

// Mul quantizes the product back to 2 decimals (half-up).
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor).Round(2)}
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Text renders the bare 2-decimal form, e.g. "12.50".
func (m Money) Text() string {
	return m.amount.StringFixed(2)
}

// String renders the currency-prefixed wire form, e.g. "$12.50".
func (m Money) String() string {
	if m.amount.IsNegative() {
		return "-$" + m.amount.Abs().StringFixed(2)
	}
	return "$" + m.amount.StringFixed(2)
}

// Package format renders monetary amounts and dates for display.
//
// Display conventions (currency symbol, date pattern) are injected from
// configuration so aggregation logic never carries locale literals.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency formats decimal amounts for display: exactly two fraction
// digits, comma-grouped integer digits, symbol prefix. All rounding is
// decimal half-up; binary floating point is never involved.
type Currency struct {
	symbol string
}

// NewCurrency creates a currency formatter with the given symbol prefix.
func NewCurrency(symbol string) Currency {
	return Currency{symbol: symbol}
}

// Format renders an amount, e.g. 1000.5 -> "£1,000.50".
// Negative amounts carry a leading sign: -1000.5 -> "-£1,000.50".
func (c Currency) Format(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + c.symbol + groupThousands(intPart) + "." + fracPart
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)

	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date formats dates for display using an injected layout.
type Date struct {
	layout string
}

// NewDate creates a date formatter with the given time layout.
func NewDate(layout string) Date {
	return Date{layout: layout}
}

// Format renders a date, or "" for the zero value.
func (d Date) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(d.layout)
}

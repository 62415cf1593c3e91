package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrencyFormat(t *testing.T) {
	gbp := NewCurrency("£")

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "£0.00"},
		{"pennies only", "0.05", "£0.05"},
		{"whole pounds", "12", "£12.00"},
		{"three digit group", "999.99", "£999.99"},
		{"single separator", "1000.50", "£1,000.50"},
		{"rounds half up", "1.005", "£1.01"},
		{"truncates trailing precision", "2.999", "£3.00"},
		{"millions", "1234567.89", "£1,234,567.89"},
		{"billions", "9876543210.99", "£9,876,543,210.99"},
		{"negative amount", "-1000.5", "-£1,000.50"},
		{"small negative", "-0.01", "-£0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, gbp.Format(amount))
		})
	}
}

func TestCurrencyFormatOtherSymbol(t *testing.T) {
	usd := NewCurrency("$")

	assert.Equal(t, "$1,000.00", usd.Format(decimal.NewFromInt(1000)))
}

func TestDateFormat(t *testing.T) {
	date := NewDate("2 January 2006")

	t.Run("formats non-zero time", func(t *testing.T) {
		submitted := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
		assert.Equal(t, "7 March 2025", date.Format(submitted))
	})

	t.Run("zero time renders empty", func(t *testing.T) {
		assert.Equal(t, "", date.Format(time.Time{}))
	})
}

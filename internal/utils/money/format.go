// Package money renders minor-unit amounts for display.
package money

import (
	"github.com/shopspring/decimal"
)

// Formatter converts integer minor units into major-unit strings.
// Example: 123456 with exponent 2 returns "1234.56"; with exponent 0 it returns "123456".
type Formatter struct {
	Exponent int32
	Label    string
}

// NewFormatter creates a formatter for a currency whose minor unit is 10^-exponent.
func NewFormatter(exponent int32, label string) Formatter {
	return Formatter{Exponent: exponent, Label: label}
}

// Decimal returns the amount in major units.
func (f Formatter) Decimal(minor int64) decimal.Decimal {
	return decimal.New(minor, -f.Exponent)
}

// Format returns the amount in major units with exactly Exponent fraction digits.
func (f Formatter) Format(minor int64) string {
	return f.Decimal(minor).StringFixed(f.Exponent)
}

// Display returns the formatted amount followed by the currency label, if any.
func (f Formatter) Display(minor int64) string {
	if f.Label == "" {
		return f.Format(minor)
	}
	return f.Format(minor) + " " + f.Label
}

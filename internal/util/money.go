package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsePaise converts a decimal amount string (rupees) to paise,
// e.g. "12.34" -> 1234.
func ParsePaise(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatPaise renders paise as a rupee string with two decimals,
// e.g. 1234 -> "12.34".
func FormatPaise(paise int64) string {
	return decimal.NewFromInt(paise).Shift(-2).StringFixed(2)
}

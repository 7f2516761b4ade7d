// Package format renders invoice values for display. Everything here is
// pure: no clock, no storage, fully deterministic.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Amount formats a monetary value with its currency symbol at two
// decimals, e.g. "$1234.50". No thousands grouping.
func Amount(value float64, symbol string) string {
	return fmt.Sprintf("%s%.2f", symbol, value)
}

// Date formats an ISO calendar date (2006-01-02) as a long display
// date, e.g. "January 2, 2006". Unparseable input is returned verbatim
// rather than failing the render.
func Date(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format("January 2, 2006")
}

// Quantity trims trailing zeros from a quantity, so 2.00 renders as
// "2" and 2.50 as "2.5".
func Quantity(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Percent formats a percentage for line-item columns, e.g. "7.5%".
func Percent(value float64) string {
	return Quantity(value) + "%"
}

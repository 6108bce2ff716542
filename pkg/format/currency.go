// Package format renders numbers for display using Brazilian Portuguese
// conventions (thousands separated by ".", decimals by ",").
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the display locale of the dashboard.
var Locale = language.BrazilianPortuguese

func printer() *message.Printer {
	return message.NewPrinter(Locale)
}

// Currency returns a currency string with the real sign and thousands separators (e.g., "-R$ 1.234,56").
func Currency(amount float64) string {
	formatted := printer().Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-R$ " + formatted
	}
	return "R$ " + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1.234,56").
func NumericCurrency(amount float64) string {
	return printer().Sprintf("%.2f", amount)
}

// Count formats an integer count with thousands separators (e.g., "1.369").
func Count(n int) string {
	return printer().Sprintf("%d", n)
}

// Decimal formats value with the given number of decimals (e.g., "1,50").
func Decimal(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return printer().Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}

// Percent formats a percentage with the given number of decimals and a
// trailing percent sign (e.g., "698,43%").
func Percent(value float64, decimals int) string {
	return Decimal(value, decimals) + "%"
}

// SignedPercent is Percent with an explicit "+" for non-negative values, as
// used for growth cards (e.g., "+561%").
func SignedPercent(value float64, decimals int) string {
	if value >= 0 {
		return "+" + Percent(value, decimals)
	}
	return Percent(value, decimals)
}

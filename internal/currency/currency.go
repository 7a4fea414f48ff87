// Package currency renders and parses money amounts for display. Formatting
// goes through shopspring/decimal so large amounts do not pick up float
// artifacts on the way to the screen.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF",
	"CNY": "¥",
	"INR": "₹",
	"BRL": "R$",
	"MXN": "MX$",
	"ZAR": "R",
	"SGD": "S$",
	"HKD": "HK$",
}

// Symbol returns the display symbol for a currency code, falling back to the
// code itself.
func Symbol(code string) string {
	if symbol, ok := symbols[strings.ToUpper(code)]; ok {
		return symbol
	}
	return code
}

// Format renders an amount with its currency symbol and two decimals,
// e.g. Format(1234.5, "USD") == "$1234.50".
func Format(amount float64, code string) string {
	return Symbol(code) + decimal.NewFromFloat(amount).StringFixed(2)
}

// ParseInput extracts a numeric amount from free-form user input, ignoring
// symbols and grouping. Unparseable input yields 0.
func ParseInput(value string) float64 {
	var cleaned strings.Builder
	for _, r := range value {
		if (r >= '0' && r <= '9') || r == '.' {
			cleaned.WriteRune(r)
		}
	}
	parsed, err := decimal.NewFromString(cleaned.String())
	if err != nil {
		return 0
	}
	return parsed.InexactFloat64()
}

// Package finance holds the invoice money arithmetic. Every step rounds to
// two decimals on its own, half away from zero, so a document recomputed from
// its stored line amounts reproduces the persisted figures exactly.
package finance

import "math"

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineItemAmount returns the rounded amount for a single line.
func LineItemAmount(quantity, unitPrice float64) float64 {
	return Round2(quantity * unitPrice)
}

// Subtotal sums the stored line amounts. It deliberately does not recompute
// quantity*unitPrice, so line-level rounding is respected.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Amount
	}
	return sum
}

// Tax returns the tax on a subtotal at ratePercent.
func Tax(subtotal, ratePercent float64) float64 {
	return Round2(subtotal * (ratePercent / 100))
}

// Total combines subtotal, tax and discount. A discount larger than
// subtotal+tax yields a negative total; callers decide whether that is valid.
func Total(subtotal, tax, discount float64) float64 {
	return Round2(subtotal + tax - discount)
}

// AmountDue returns the open balance. Not clamped at zero here; clamping
// happens when a payment is applied.
func AmountDue(total, amountPaid float64) float64 {
	return Round2(total - amountPaid)
}

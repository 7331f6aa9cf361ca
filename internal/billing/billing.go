// Package billing holds the invoice arithmetic. Amounts are computed in
// decimal and rounded half away from zero to two places.
package billing

import "github.com/shopspring/decimal"

// TaxRate is the VAT applied to every invoice subtotal.
var TaxRate = decimal.RequireFromString("0.12")

const places = 2

// Round rounds v to two decimal places.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// LineSubtotal returns quantity × unitPrice, with unitPrice rounded to two
// places first so the result matches the stored price.
func LineSubtotal(quantity int, unitPrice float64) float64 {
	return decimal.NewFromInt(int64(quantity)).
		Mul(decimal.NewFromFloat(unitPrice).Round(places)).
		Round(places).
		InexactFloat64()
}

// InvoiceTotals returns the tax and total for subtotal. Subtotal is rounded
// to two places first; total is the sum of it and the rounded tax.
func InvoiceTotals(subtotal float64) (tax, total float64) {
	sub := decimal.NewFromFloat(subtotal).Round(places)
	t := sub.Mul(TaxRate).Round(places)

	return t.InexactFloat64(), sub.Add(t).InexactFloat64()
}

// Package format renders engine figures for people: amounts rounded to
// cents, Brazilian grouping and decimal symbols.
package format

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	brl      = money.GetCurrency(money.BRL)
	amount   = money.NewFormatter(brl.Fraction, brl.Decimal, brl.Thousand, "", "1")
	percent  = money.NewFormatter(2, brl.Decimal, brl.Thousand, "", "1%")
	quantity = money.NewFormatter(2, brl.Decimal, brl.Thousand, "", "1")
)

// Round2 rounds v to two decimal places.
func Round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func cents(v float64, places int32) int64 {
	return decimal.NewFromFloat(v).Round(places).Shift(places).IntPart()
}

// BRL formats v as "R$ 1.234,56". Negative values read "R$ -1.234,56".
func BRL(v float64) string {
	return brl.Grapheme + " " + Amount(v)
}

// Amount formats v with two decimals and no currency symbol.
func Amount(v float64) string {
	return amount.Format(cents(v, int32(brl.Fraction)))
}

// Percent formats a fraction: 0.065 becomes "6,50%".
func Percent(rate float64) string {
	return percent.Format(decimal.NewFromFloat(rate).Shift(4).Round(0).IntPart())
}

// Decimal2 formats a plain number with two decimals, e.g. a term in years.
func Decimal2(v float64) string {
	return quantity.Format(cents(v, 2))
}

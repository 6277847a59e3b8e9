// Package format renders monetary and temporal values for display in the
// ledger's Brazilian locale. These are pure presentation helpers; nothing
// in the derivation pipeline depends on them.
package format

import (
	"github.com/Rhymond/go-money"

	"debtscope/internal/parse"
)

// BRL renders an amount as Brazilian reais, e.g. "R$1.234,56".
func BRL(v float64) string {
	return money.NewFromFloat(v, money.BRL).Display()
}

// DueDate renders a raw due-date string as dd/mm/yyyy, or "N/A" when the
// date does not parse.
func DueDate(s string) string {
	d, ok := parse.Date(s)
	if !ok {
		return "N/A"
	}
	return d.Format("02/01/2006")
}

// Package money parses operator-entered amounts and renders them in the
// bank's presentation currency (BRL).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Parse converts operator input into a decimal amount. Both the dot form
// "100.50" and the Brazilian comma form "100,50" are accepted.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

// FormatBRL renders the amount as Brazilian currency, e.g. "R$ 1.234,56".
// The currency formatter only takes Go numeric types, so the amount passes
// through float64: display is exact up to about fifteen significant digits.
// Ledger arithmetic stays decimal and is not bounded by this.
func FormatBRL(d decimal.Decimal) string {
	return printer.Sprintf("%v", currency.Symbol(currency.BRL.Amount(d.InexactFloat64())))
}

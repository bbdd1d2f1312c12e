package kernel

import (
	"strings"

	"golang.org/x/text/currency"
)

// DefaultCurrency is applied when the backend omits the order currency.
const DefaultCurrency = "INR"

// Money is an order amount as the backend reports it (a decimal string) plus
// its currency code. The amount is kept verbatim; orderdesk never does
// arithmetic on it.
type Money struct {
	amount   string
	currency string
}

// NewMoney normalises the currency: blank becomes DefaultCurrency, a known
// ISO 4217 code is canonicalised, anything else is kept upper-cased.
// A blank amount is reported as "0".
func NewMoney(amount, code string) Money {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		amount = "0"
	}
	return Money{amount: amount, currency: normalizeCurrency(code)}
}

func (m Money) Amount() string {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// String renders e.g. "INR 1499.00".
func (m Money) String() string {
	return m.currency + " " + m.amount
}

func normalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCurrency
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	return unit.String()
}

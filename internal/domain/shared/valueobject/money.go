package valueobject

import (
	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	INR Currency = "INR" // Indian Rupee (default)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
)

// currencySymbols maps currency codes to their display symbols
var currencySymbols = map[Currency]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
}

// Money is a value object representing monetary amounts.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoneyINR creates Money in INR (Indian Rupee)
func NewMoneyINR(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: INR}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Equals returns true if both amount and currency match
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns the amount formatted with the currency symbol, e.g. "₹150.0"
func (m Money) String() string {
	symbol := currencySymbols[m.currency]
	if symbol == "" {
		symbol = string(m.currency) + " "
	}
	return symbol + FormatAmount(m.amount)
}

// FormatAmount is the single formatting rule for every amount the system
// renders, on screen and on the bill. Integral amounts keep one decimal
// place ("150.0"); fractional amounts render exactly as stored ("49.99").
func FormatAmount(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.StringFixed(1)
	}
	return d.String()
}

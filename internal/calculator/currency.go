package calculator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount converts an expense amount into the group's home currency
// using the exchange rate captured when the expense was written. It never
// fetches a rate: the conversion is a closed-form multiplication, rounded to
// cents. When the expense currency is empty or already the home currency the
// amount passes through unchanged. A missing rate for a foreign currency is
// treated as 1:1 — a fail-safe so a balance view degrades instead of breaking.
func NormalizeAmount(amount float64, currency string, exchangeRateToHome float64, homeCurrency string) float64 {
	if currency == "" || strings.EqualFold(currency, homeCurrency) {
		return amount
	}
	if exchangeRateToHome <= 0 {
		return amount
	}

	converted := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(exchangeRateToHome)).
		Round(2)
	f, _ := converted.Float64()
	return f
}

package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimals shown for amounts on the console.
const MoneyPrecision = 2

// FormatWithPrecision formats an amount with the given precision.
// Example: amount 12.3456 with precision 2 returns "12.35"
// Example: amount 12.3456 with precision 0 returns "12"
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}

// FormatMoney formats an amount for display with MoneyPrecision decimals.
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPrecision)
}

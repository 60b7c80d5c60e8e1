package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatDecimal renders d with two fraction digits.
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmount renders a server amount string with two fraction digits.
// Strings that are not numbers are returned unchanged.
func FormatAmount(amount string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return amount
	}
	return FormatDecimal(d)
}

// FormatMoney prefixes a formatted amount with a currency symbol when one is
// known.
func FormatMoney(symbol, amount string) string {
	formatted := FormatAmount(amount)
	if symbol == "" {
		return formatted
	}
	return fmt.Sprintf("%s %s", symbol, formatted)
}

// ParseAmount parses a decimal amount, accepting a comma as the decimal
// separator.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return d, nil
}

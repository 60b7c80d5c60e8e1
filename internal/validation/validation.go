// Package validation holds the input checks run by the interactive forms and
// flag parsing. The form controller itself never validates.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/ffly/internal/constants"
	"github.com/hance08/ffly/internal/utils"
)

// Required returns a validator rejecting blank input for the named field.
func Required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateName checks an account, category or currency name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("name can't be empty")
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateAmount accepts a strictly positive decimal amount.
func ValidateAmount(s string) error {
	d, err := utils.ParseAmount(s)
	if err != nil {
		return err
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateOpeningBalance accepts an empty string or any decimal, including
// negative balances for liabilities.
func ValidateOpeningBalance(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := utils.ParseAmount(s)
	return err
}

func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return nil
}

// ValidateCurrencyCode validates an ISO 4217 style code.
func ValidateCurrencyCode(code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))

	if len(code) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}

func ValidateDecimalPlaces(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("decimal places must be a whole number")
	}
	if n < 0 || n > constants.MaxCurrencyDecimals {
		return fmt.Errorf("decimal places must be between 0 and %d", constants.MaxCurrencyDecimals)
	}
	return nil
}

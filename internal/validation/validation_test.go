package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	check := Required("description")
	assert.NoError(t, check("Lunch"))
	err := check("   ")
	assert.EqualError(t, err, "description is required")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Checking"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName(strings.Repeat("x", 256)))
}

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"12.50", true},
		{"12,50", true},
		{"0.01", true},
		{"0", false},
		{"-4", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateAmount(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestValidateOpeningBalance(t *testing.T) {
	assert.NoError(t, ValidateOpeningBalance(""))
	assert.NoError(t, ValidateOpeningBalance("-250.00"))
	assert.Error(t, ValidateOpeningBalance("lots"))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-10-19"))
	assert.Error(t, ValidateDate("19/10/2026"))
	assert.Error(t, ValidateDate("2026-02-30"))
}

func TestValidateCurrencyCode(t *testing.T) {
	assert.NoError(t, ValidateCurrencyCode("eur"))
	assert.NoError(t, ValidateCurrencyCode(" USD "))
	assert.Error(t, ValidateCurrencyCode("EURO"))
	assert.Error(t, ValidateCurrencyCode("E1R"))
}

func TestValidateDecimalPlaces(t *testing.T) {
	assert.NoError(t, ValidateDecimalPlaces("2"))
	assert.NoError(t, ValidateDecimalPlaces("0"))
	assert.Error(t, ValidateDecimalPlaces("13"))
	assert.Error(t, ValidateDecimalPlaces("-1"))
	assert.Error(t, ValidateDecimalPlaces("two"))
}

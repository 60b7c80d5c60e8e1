package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"12.500000000000": "12.50",
		"100":             "100.00",
		"-3.2":            "-3.20",
		" 7 ":             "7.00",
		"n/a":             "n/a",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "€ 1250.50", FormatMoney("€", "1250.5"))
	assert.Equal(t, "40.00", FormatMoney("", "40"))
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("12,34")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("12.34")))

	_, err = ParseAmount("")
	assert.Error(t, err)

	_, err = ParseAmount("1.2.3")
	assert.Error(t, err)
}

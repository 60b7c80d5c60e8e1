package model

type Currency struct {
	Code          string
	Name          string
	Symbol        string
	DecimalPlaces int
	Enabled       bool
	Default       bool
}

type CurrencyInput struct {
	Code          string
	Name          string
	Symbol        string
	DecimalPlaces int
	Enabled       bool
}

// DefaultCurrency returns the currency flagged as default, falling back to the
// first one in the list. ok is false for an empty list.
func DefaultCurrency(currencies []Currency) (Currency, bool) {
	if len(currencies) == 0 {
		return Currency{}, false
	}
	for _, c := range currencies {
		if c.Default {
			return c, true
		}
	}
	return currencies[0], true
}

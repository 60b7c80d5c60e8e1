package model

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// DashboardMetrics is derived on demand and never stored.
type DashboardMetrics struct {
	Period        Period
	NetWorth      decimal.Decimal
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	TopCategories []CategoryTotal
	// Currencies lists every currency code that went into the sums, in the
	// order first seen. More than one means the totals mix currencies.
	Currencies []string
}

func (m DashboardMetrics) MixedCurrencies() bool {
	return len(m.Currencies) > 1
}

package constants

const (
	MaxNameLen          = 255
	MaxCurrencyDecimals = 12
	TopCategoryLimit    = 5
	RecentTransactions  = 5
)

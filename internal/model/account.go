package model

type AccountType string

const (
	AccountAsset     AccountType = "asset"
	AccountExpense   AccountType = "expense"
	AccountRevenue   AccountType = "revenue"
	AccountCash      AccountType = "cash"
	AccountLiability AccountType = "liability"
)

// AccountTypes lists the kinds an account can be created with, in menu order.
var AccountTypes = []AccountType{
	AccountAsset,
	AccountExpense,
	AccountRevenue,
	AccountCash,
	AccountLiability,
}

// Account is a read-only snapshot of a remote account.
type Account struct {
	ID             string
	Name           string
	Type           AccountType
	CurrentBalance string
	CurrencyCode   string
	CurrencySymbol string
	Active         bool
}

// AccountInput carries the fields sent when creating or updating an account.
type AccountInput struct {
	Name         string
	Type         AccountType
	CurrencyCode string
	Active       bool
	// OpeningBalance is only sent on create, and only when non-zero.
	OpeningBalance string
}

func (t AccountType) Label() string {
	switch t {
	case AccountAsset:
		return "Asset Account"
	case AccountExpense:
		return "Expense Account"
	case AccountRevenue:
		return "Revenue Account"
	case AccountCash:
		return "Cash Account"
	case AccountLiability:
		return "Liability"
	default:
		return string(t)
	}
}

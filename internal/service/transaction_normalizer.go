package service

import (
	"fmt"
	"sort"

	"github.com/hance08/ffly/internal/constants"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/model"
	"github.com/shopspring/decimal"
)

// FlattenGroup turns a transaction group into one flat record built from its
// first leg. Further legs are ignored. ok is false for a group without legs.
func FlattenGroup(g firefly.TransactionGroup) (model.Transaction, bool) {
	if len(g.Attributes.Transactions) == 0 {
		return model.Transaction{}, false
	}
	leg := g.Attributes.Transactions[0]

	return model.Transaction{
		ID:              g.ID,
		CreatedAt:       g.Attributes.CreatedAt,
		Date:            leg.Date,
		Description:     leg.Description,
		Amount:          leg.Amount,
		CurrencyCode:    leg.CurrencyCode,
		CurrencySymbol:  leg.CurrencySymbol,
		Kind:            model.TransactionKind(leg.Type),
		SourceID:        leg.SourceID,
		SourceName:      leg.SourceName,
		DestinationID:   leg.DestinationID,
		DestinationName: leg.DestinationName,
		CategoryID:      leg.CategoryID,
		CategoryName:    leg.CategoryName,
	}, true
}

func FlattenGroups(groups []firefly.TransactionGroup) []model.Transaction {
	out := make([]model.Transaction, 0, len(groups))
	for _, g := range groups {
		if tx, ok := FlattenGroup(g); ok {
			out = append(out, tx)
		}
	}
	return out
}

// FlattenPage flattens a page of groups; pagination is passed through.
func FlattenPage(p firefly.GroupPage) model.Page[model.Transaction] {
	return model.Page[model.Transaction]{
		Data:       FlattenGroups(p.Groups),
		Pagination: p.Pagination,
	}
}

// DroppedLegs counts the legs FlattenGroups leaves out.
func DroppedLegs(groups []firefly.TransactionGroup) int {
	var n int
	for _, g := range groups {
		if legs := len(g.Attributes.Transactions); legs > 1 {
			n += legs - 1
		}
	}
	return n
}

// Aggregate computes dashboard metrics. Net worth covers every asset account
// as it stands now and ignores period; income, expenses and top categories
// only count transactions dated inside period. Amounts are summed as plain
// decimals, whatever their currency.
func Aggregate(accounts []model.Account, txs []model.Transaction, period model.Period) (model.DashboardMetrics, error) {
	m := model.DashboardMetrics{
		Period:        period,
		NetWorth:      decimal.Zero,
		Income:        decimal.Zero,
		Expenses:      decimal.Zero,
		TopCategories: []model.CategoryTotal{},
	}
	seenCurrency := make(map[string]bool)
	noteCurrency := func(code string) {
		if code != "" && !seenCurrency[code] {
			seenCurrency[code] = true
			m.Currencies = append(m.Currencies, code)
		}
	}

	for _, acc := range accounts {
		if acc.Type != model.AccountAsset {
			continue
		}
		balance := decimal.Zero
		if acc.CurrentBalance != "" {
			b, err := decimal.NewFromString(acc.CurrentBalance)
			if err != nil {
				return model.DashboardMetrics{}, fmt.Errorf("account %s has invalid balance %q: %w", acc.ID, acc.CurrentBalance, err)
			}
			balance = b
		}
		m.NetWorth = m.NetWorth.Add(balance)
		noteCurrency(acc.CurrencyCode)
	}

	categoryIndex := make(map[string]int)
	for _, tx := range txs {
		if tx.Kind != model.KindDeposit && tx.Kind != model.KindWithdrawal {
			continue
		}

		inPeriod, err := period.Contains(tx.Date)
		if err != nil {
			return model.DashboardMetrics{}, fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
		if !inPeriod {
			continue
		}

		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			return model.DashboardMetrics{}, fmt.Errorf("transaction %s has invalid amount %q: %w", tx.ID, tx.Amount, err)
		}
		noteCurrency(tx.CurrencyCode)

		if tx.Kind == model.KindDeposit {
			m.Income = m.Income.Add(amount)
			continue
		}

		m.Expenses = m.Expenses.Add(amount)
		if tx.CategoryName == "" {
			continue
		}
		if i, ok := categoryIndex[tx.CategoryName]; ok {
			m.TopCategories[i].Amount = m.TopCategories[i].Amount.Add(amount)
		} else {
			categoryIndex[tx.CategoryName] = len(m.TopCategories)
			m.TopCategories = append(m.TopCategories, model.CategoryTotal{Name: tx.CategoryName, Amount: amount})
		}
	}

	sort.SliceStable(m.TopCategories, func(i, j int) bool {
		return m.TopCategories[i].Amount.GreaterThan(m.TopCategories[j].Amount)
	})
	if len(m.TopCategories) > constants.TopCategoryLimit {
		m.TopCategories = m.TopCategories[:constants.TopCategoryLimit]
	}

	return m, nil
}

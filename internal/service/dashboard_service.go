package service

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/model"
)

type DashboardService struct {
	accounts     *AccountService
	transactions *TransactionService
}

func NewDashboardService(accounts *AccountService, transactions *TransactionService) *DashboardService {
	return &DashboardService{accounts: accounts, transactions: transactions}
}

// GetMetrics fetches the asset accounts and the transactions of period and
// aggregates them. Any fetch failure is returned as is; there is no partial
// result.
func (ds *DashboardService) GetMetrics(ctx context.Context, period model.Period) (model.DashboardMetrics, error) {
	accounts, err := ds.accounts.GetAssetAccounts(ctx)
	if err != nil {
		return model.DashboardMetrics{}, err
	}

	txs, err := ds.transactions.GetAllTransactions(ctx, firefly.TransactionFilter{
		Start: period.StartString(),
		End:   period.EndString(),
	})
	if err != nil {
		return model.DashboardMetrics{}, err
	}

	metrics, err := Aggregate(accounts, txs, period)
	if err != nil {
		return model.DashboardMetrics{}, fmt.Errorf("failed to compute dashboard: %w", err)
	}
	return metrics, nil
}

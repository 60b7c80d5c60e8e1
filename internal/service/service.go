package service

import (
	"context"
	"log/slog"

	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/model"
)

type AccountAPI interface {
	ListAccounts(ctx context.Context, accType model.AccountType, page int) (model.Page[model.Account], error)
	GetAccount(ctx context.Context, id string) (model.Account, error)
	CreateAccount(ctx context.Context, in model.AccountInput) (model.Account, error)
	UpdateAccount(ctx context.Context, id string, in model.AccountInput) (model.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type CategoryAPI interface {
	ListCategories(ctx context.Context, page int) (model.Page[model.Category], error)
	CreateCategory(ctx context.Context, name, notes string) (model.Category, error)
	UpdateCategory(ctx context.Context, id, name, notes string) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CurrencyAPI interface {
	ListCurrencies(ctx context.Context, page int) (model.Page[model.Currency], error)
	CreateCurrency(ctx context.Context, in model.CurrencyInput) (model.Currency, error)
	UpdateCurrency(ctx context.Context, code string, in model.CurrencyInput) (model.Currency, error)
	DeleteCurrency(ctx context.Context, code string) error
	EnableCurrency(ctx context.Context, code string) error
	DisableCurrency(ctx context.Context, code string) error
}

type TransactionAPI interface {
	ListTransactions(ctx context.Context, f firefly.TransactionFilter) (firefly.GroupPage, error)
	GetTransaction(ctx context.Context, id string) (firefly.TransactionGroup, error)
	CreateTransaction(ctx context.Context, payload model.TransactionPayload) (firefly.TransactionGroup, error)
	UpdateTransaction(ctx context.Context, id string, payload model.TransactionPayload) (firefly.TransactionGroup, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// API is everything the services need from the remote server.
// *firefly.Client satisfies it.
type API interface {
	AccountAPI
	CategoryAPI
	CurrencyAPI
	TransactionAPI
}

type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Currency    *CurrencyService
	Transaction *TransactionService
	Dashboard   *DashboardService
}

func NewService(api API, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	accounts := NewAccountService(api)
	transactions := NewTransactionService(api, log)

	return &Service{
		Account:     accounts,
		Category:    NewCategoryService(api),
		Currency:    NewCurrencyService(api),
		Transaction: transactions,
		Dashboard:   NewDashboardService(accounts, transactions),
	}
}

// collectPages walks a paginated listing from page 1 to the last page.
func collectPages[T any](ctx context.Context, fetch func(ctx context.Context, page int) (model.Page[T], error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Data...)
		if len(p.Data) == 0 || !p.Pagination.HasNext() {
			return all, nil
		}
	}
}

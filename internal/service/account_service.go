package service

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/model"
)

type AccountService struct {
	api AccountAPI
}

func NewAccountService(api AccountAPI) *AccountService {
	return &AccountService{api: api}
}

// GetAllAccounts returns every account, or every account of accType when it
// is non-empty.
func (as *AccountService) GetAllAccounts(ctx context.Context, accType model.AccountType) ([]model.Account, error) {
	accounts, err := collectPages(ctx, func(ctx context.Context, page int) (model.Page[model.Account], error) {
		return as.api.ListAccounts(ctx, accType, page)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

func (as *AccountService) GetAssetAccounts(ctx context.Context) ([]model.Account, error) {
	return as.GetAllAccounts(ctx, model.AccountAsset)
}

func (as *AccountService) GetAccount(ctx context.Context, id string) (model.Account, error) {
	acc, err := as.api.GetAccount(ctx, id)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account %s: %w", id, err)
	}
	return acc, nil
}

func (as *AccountService) CreateAccount(ctx context.Context, in model.AccountInput) (model.Account, error) {
	acc, err := as.api.CreateAccount(ctx, in)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return acc, nil
}

func (as *AccountService) UpdateAccount(ctx context.Context, id string, in model.AccountInput) (model.Account, error) {
	acc, err := as.api.UpdateAccount(ctx, id, in)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to update account %s: %w", id, err)
	}
	return acc, nil
}

func (as *AccountService) DeleteAccount(ctx context.Context, id string) error {
	if err := as.api.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}

// FindAccount looks an account up by id or, failing that, by exact name.
func FindAccount(accounts []model.Account, ref string) (model.Account, bool) {
	for _, acc := range accounts {
		if acc.ID == ref {
			return acc, true
		}
	}
	for _, acc := range accounts {
		if acc.Name == ref {
			return acc, true
		}
	}
	return model.Account{}, false
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/ffly/internal/model"
)

var ErrDefaultCurrency = errors.New("the default currency can't be deleted")

type CurrencyService struct {
	api CurrencyAPI
}

func NewCurrencyService(api CurrencyAPI) *CurrencyService {
	return &CurrencyService{api: api}
}

func (cs *CurrencyService) GetAllCurrencies(ctx context.Context) ([]model.Currency, error) {
	currencies, err := collectPages(ctx, cs.api.ListCurrencies)
	if err != nil {
		return nil, fmt.Errorf("failed to get currencies: %w", err)
	}
	return currencies, nil
}

func (cs *CurrencyService) GetCurrency(ctx context.Context, code string) (model.Currency, error) {
	currencies, err := cs.GetAllCurrencies(ctx)
	if err != nil {
		return model.Currency{}, err
	}
	for _, c := range currencies {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return model.Currency{}, fmt.Errorf("currency %s not found", code)
}

// CreateCurrency creates a currency; new currencies start enabled.
func (cs *CurrencyService) CreateCurrency(ctx context.Context, in model.CurrencyInput) (model.Currency, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Enabled = true
	c, err := cs.api.CreateCurrency(ctx, in)
	if err != nil {
		return model.Currency{}, fmt.Errorf("failed to create currency: %w", err)
	}
	return c, nil
}

// UpdateCurrency keeps the currency's current enabled flag.
func (cs *CurrencyService) UpdateCurrency(ctx context.Context, current model.Currency, in model.CurrencyInput) (model.Currency, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Enabled = current.Enabled
	c, err := cs.api.UpdateCurrency(ctx, current.Code, in)
	if err != nil {
		return model.Currency{}, fmt.Errorf("failed to update currency %s: %w", current.Code, err)
	}
	return c, nil
}

func (cs *CurrencyService) DeleteCurrency(ctx context.Context, current model.Currency) error {
	if current.Default {
		return ErrDefaultCurrency
	}
	if err := cs.api.DeleteCurrency(ctx, current.Code); err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", current.Code, err)
	}
	return nil
}

// SetEnabled enables or disables the currency identified by code.
func (cs *CurrencyService) SetEnabled(ctx context.Context, code string, enabled bool) error {
	var err error
	if enabled {
		err = cs.api.EnableCurrency(ctx, code)
	} else {
		err = cs.api.DisableCurrency(ctx, code)
	}
	if err != nil {
		return fmt.Errorf("failed to update currency %s: %w", code, err)
	}
	return nil
}

// Toggle flips the enabled flag of current and returns the new state.
func (cs *CurrencyService) Toggle(ctx context.Context, current model.Currency) (bool, error) {
	next := !current.Enabled
	if err := cs.SetEnabled(ctx, current.Code, next); err != nil {
		return current.Enabled, err
	}
	return next, nil
}

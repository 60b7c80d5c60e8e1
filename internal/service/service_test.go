package service

import (
	"context"
	"testing"

	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/logger"
	"github.com/hance08/ffly/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCurrencyStartsEnabled(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCurrencyService(api)

	c, err := svc.CreateCurrency(context.Background(), model.CurrencyInput{Code: " jpy", Name: "Yen", Symbol: "¥"})
	require.NoError(t, err)

	assert.Equal(t, "JPY", c.Code)
	assert.True(t, c.Enabled)
	require.Len(t, api.currencyIn, 1)
	assert.True(t, api.currencyIn[0].Enabled)
}

func TestUpdateCurrencyKeepsEnabledFlag(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCurrencyService(api)

	_, err := svc.UpdateCurrency(context.Background(), model.Currency{Code: "GBP", Enabled: false}, model.CurrencyInput{Code: "gbp", Name: "Pound", Enabled: true})
	require.NoError(t, err)

	assert.Equal(t, "GBP", api.updatedCode)
	assert.False(t, api.currencyIn[0].Enabled)
}

func TestDeleteDefaultCurrencyIsRefused(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCurrencyService(api)

	err := svc.DeleteCurrency(context.Background(), model.Currency{Code: "EUR", Default: true})
	assert.ErrorIs(t, err, ErrDefaultCurrency)
	assert.Empty(t, api.deleted)

	require.NoError(t, svc.DeleteCurrency(context.Background(), model.Currency{Code: "USD"}))
	assert.Equal(t, []string{"USD"}, api.deleted)
}

func TestToggleCurrency(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCurrencyService(api)

	enabled, err := svc.Toggle(context.Background(), model.Currency{Code: "USD", Enabled: true})
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = svc.Toggle(context.Background(), model.Currency{Code: "CHF"})
	require.NoError(t, err)
	assert.True(t, enabled)

	assert.Equal(t, []string{"USD"}, api.disabled)
	assert.Equal(t, []string{"CHF"}, api.enabled)
}

func TestGetCurrencyIgnoresCase(t *testing.T) {
	api := &fakeAPI{currencies: []model.Currency{{Code: "EUR", Name: "Euro"}}}
	svc := NewCurrencyService(api)

	c, err := svc.GetCurrency(context.Background(), "eur")
	require.NoError(t, err)
	assert.Equal(t, "Euro", c.Name)

	_, err = svc.GetCurrency(context.Background(), "XXX")
	assert.Error(t, err)
}

func TestCategoryIconStoredInNotes(t *testing.T) {
	api := &fakeAPI{}
	svc := NewCategoryService(api)

	c, err := svc.CreateCategory(context.Background(), "Food", model.IconShoppingCart)
	require.NoError(t, err)
	assert.Equal(t, model.IconShoppingCart, c.Icon())

	_, err = svc.UpdateCategory(context.Background(), "c1", "Food", model.IconFallback)
	require.NoError(t, err)
	assert.Equal(t, []string{model.IconShoppingCart.Name(), model.IconFallback.Name()}, api.notes)
}

func TestFindAccount(t *testing.T) {
	accounts := []model.Account{
		{ID: "1", Name: "Checking"},
		{ID: "2", Name: "1"},
	}

	acc, ok := FindAccount(accounts, "1")
	require.True(t, ok)
	assert.Equal(t, "Checking", acc.Name)

	acc, ok = FindAccount(accounts, "Checking")
	require.True(t, ok)
	assert.Equal(t, "1", acc.ID)

	_, ok = FindAccount(accounts, "Savings")
	assert.False(t, ok)
}

func TestTransactionMutationsSendFormPayload(t *testing.T) {
	api := &fakeAPI{}
	svc := NewTransactionService(api, logger.Discard())

	form := &TransactionForm{Kind: model.KindTransfer, Amount: "10", Date: "2026-10-19", SourceID: "1", DestinationID: "2"}
	tx, err := svc.CreateTransaction(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "99", tx.ID)
	require.Len(t, api.created, 1)
	assert.Equal(t, form.Payload(), api.created[0])

	_, err = svc.UpdateTransaction(context.Background(), "7", form)
	require.NoError(t, err)
	assert.Equal(t, form.Payload(), api.updated["7"])
}

func TestGetTransactionByIDWithoutSplits(t *testing.T) {
	api := &fakeAPI{group: groupOf("3")}
	svc := NewTransactionService(api, logger.Discard())

	_, err := svc.GetTransactionByID(context.Background(), "3")
	assert.Error(t, err)

	api.group = groupOf("3", firefly.TransactionSplit{Type: "deposit", Amount: "1"})
	tx, err := svc.GetTransactionByID(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, model.KindDeposit, tx.Kind)
}

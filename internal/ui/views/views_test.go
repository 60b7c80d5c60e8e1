package views

import (
	"testing"

	"github.com/hance08/ffly/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	m.Run()
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2026-10-03", DisplayDate("2026-10-03T00:00:00+02:00"))
	assert.Equal(t, "2026-10-03", DisplayDate("2026-10-03"))
	assert.Equal(t, "soon", DisplayDate("soon"))
}

func TestRenderersAcceptEmptyAndFilledInput(t *testing.T) {
	tx := model.Transaction{ID: "1", Kind: model.KindDeposit, Date: "2026-10-01", Amount: "100", SourceName: "ACME"}

	assert.NoError(t, NewAccountListView().Render(nil))
	assert.NoError(t, NewAccountListView().Render([]model.Account{{ID: "1", Name: "Checking", Type: model.AccountAsset, CurrentBalance: "10"}}))
	assert.NoError(t, RenderCategoryList([]model.Category{{ID: "1", Name: "Food", Notes: "nope"}}))
	assert.NoError(t, RenderCurrencyList([]model.Currency{{Code: "EUR", Enabled: true, Default: true}}))
	assert.NoError(t, NewTransactionListView().Render(model.Page[model.Transaction]{Data: []model.Transaction{tx}}))
	assert.NoError(t, RenderTransactionDetail(tx))
	assert.NoError(t, RenderDashboard(model.DashboardMetrics{
		NetWorth:      decimal.NewFromInt(5),
		TopCategories: []model.CategoryTotal{{Name: "Food", Amount: decimal.NewFromInt(4)}},
		Currencies:    []string{"EUR", "USD"},
	}, []model.Transaction{tx}))
	assert.NoError(t, RenderSystemInfo(SystemInfoItem{ConfigPath: "/tmp/config.yaml"}))
}

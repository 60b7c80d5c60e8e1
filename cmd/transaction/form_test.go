package transaction

import (
	"testing"
	"time"

	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChoices = prompts.TransactionChoices{
	Accounts: []model.Account{
		{ID: "1", Name: "Checking", Type: model.AccountAsset},
		{ID: "2", Name: "Savings", Type: model.AccountAsset},
	},
	Categories: []model.Category{{ID: "7", Name: "Food"}},
}

func parsedCmd(t *testing.T, args ...string) (*cobra.Command, *formFlags) {
	t.Helper()
	flags := &formFlags{}
	cmd := &cobra.Command{Use: "test"}
	addFormFlags(cmd, flags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestApplyFlagsWithdrawal(t *testing.T) {
	cmd, flags := parsedCmd(t, "-d", "Coffee", "-a", "3.50", "--from", "Checking", "--to", "Coffee Bar", "--category", "Food")
	form := service.NewTransactionForm(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	require.True(t, formFlagsUsed(cmd))
	require.NoError(t, applyFlags(cmd, flags, form, testChoices))

	assert.Equal(t, model.TransactionPayload{
		Type:            model.KindWithdrawal,
		Date:            "2026-10-19",
		Amount:          "3.50",
		Description:     "Coffee",
		CategoryID:      "7",
		SourceID:        "1",
		DestinationName: "Coffee Bar",
	}, form.Payload())
}

func TestApplyFlagsDepositResolvesDestinationAccount(t *testing.T) {
	cmd, flags := parsedCmd(t, "-t", "deposit", "-d", "Salary", "-a", "2500", "--from", "ACME", "--to", "2")
	form := service.NewTransactionForm(time.Now())

	require.NoError(t, applyFlags(cmd, flags, form, testChoices))

	p := form.Payload()
	assert.Equal(t, "ACME", p.SourceName)
	assert.Equal(t, "2", p.DestinationID)
	assert.Empty(t, p.SourceID)
	assert.Empty(t, p.DestinationName)
}

func TestApplyFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown type", []string{"-t", "refund", "-d", "x", "-a", "1", "--from", "1", "--to", "y"}},
		{"unknown account", []string{"-d", "x", "-a", "1", "--from", "Wallet", "--to", "y"}},
		{"unknown category", []string{"-d", "x", "-a", "1", "--from", "1", "--to", "y", "--category", "Rent"}},
		{"missing payee", []string{"-d", "x", "-a", "1", "--from", "1"}},
		{"bad amount", []string{"-d", "x", "--amount=-4", "--from", "1", "--to", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, flags := parsedCmd(t, tt.args...)
			assert.Error(t, applyFlags(cmd, flags, service.NewTransactionForm(time.Now()), testChoices))
		})
	}
}

func TestEditFlagsKeepRecordValues(t *testing.T) {
	form := service.TransactionFormFromRecord(model.Transaction{
		Kind:            model.KindWithdrawal,
		Date:            "2026-10-03T00:00:00+02:00",
		Description:     "Groceries",
		Amount:          "40",
		SourceID:        "1",
		DestinationName: "Supermarket",
	})
	cmd, flags := parsedCmd(t, "-t", "transfer", "--to", "Savings")

	require.NoError(t, applyFlags(cmd, flags, form, testChoices))

	p := form.Payload()
	assert.Equal(t, model.KindTransfer, p.Type)
	assert.Equal(t, "Groceries", p.Description)
	assert.Equal(t, "2026-10-03", p.Date)
	assert.Equal(t, "1", p.SourceID)
	assert.Equal(t, "2", p.DestinationID)
}

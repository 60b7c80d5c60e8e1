package transaction

import (
	"context"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(sess *app.Session) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: list, view details, record, edit or delete.",
	}

	transactionCmd.AddCommand(NewListCmd(sess))
	transactionCmd.AddCommand(NewShowCmd(sess))
	transactionCmd.AddCommand(NewCreateCmd(sess))
	transactionCmd.AddCommand(NewEditCmd(sess))
	transactionCmd.AddCommand(NewDeleteCmd(sess))

	return transactionCmd
}

// loadChoices fetches what the transaction form picks from.
func loadChoices(ctx context.Context, svc *service.Service) (prompts.TransactionChoices, error) {
	accounts, err := svc.Account.GetAssetAccounts(ctx)
	if err != nil {
		return prompts.TransactionChoices{}, err
	}
	categories, err := svc.Category.GetAllCategories(ctx)
	if err != nil {
		return prompts.TransactionChoices{}, err
	}
	currencies, err := svc.Currency.GetAllCurrencies(ctx)
	if err != nil {
		return prompts.TransactionChoices{}, err
	}

	return prompts.TransactionChoices{
		Accounts:   accounts,
		Categories: categories,
		Currencies: currencies,
	}, nil
}

// refreshList re-renders the first page after a mutation.
func refreshList(ctx context.Context, svc *service.Service) error {
	page, err := svc.Transaction.GetTransactions(ctx, firefly.TransactionFilter{Page: 1})
	if err != nil {
		return err
	}
	return views.NewTransactionListView().Render(page)
}

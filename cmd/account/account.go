package account

import (
	"context"
	"fmt"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewAccountCmd(sess *app.Session) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acc"},
		Short:   "It can create, edit, delete account and show the list of all accounts.",
		Long:    `It can create, edit, delete account and show the list of all accounts.`,
	}

	accountCmd.AddCommand(NewListCmd(sess))
	accountCmd.AddCommand(NewCreateCmd(sess))
	accountCmd.AddCommand(NewEditCmd(sess))
	accountCmd.AddCommand(NewDeleteCmd(sess))

	return accountCmd
}

func parseType(s string) (model.AccountType, error) {
	if s == "" {
		return "", nil
	}
	for _, t := range model.AccountTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown account type %q (valid: asset, expense, revenue, cash, liability)", s)
}

// refreshList re-renders the account list after a mutation.
func refreshList(ctx context.Context, svc *service.Service, accType model.AccountType) error {
	accounts, err := svc.Account.GetAllAccounts(ctx, accType)
	if err != nil {
		return err
	}
	return views.NewAccountListView().Render(accounts)
}

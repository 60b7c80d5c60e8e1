package account

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	sess *app.Session
	cmd  *cobra.Command
}

func NewEditCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <account-id>",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				sess: sess,
				cmd:  cmd,
			}
			return runner.Run(args[0])
		},
	}
}

func (r *editRunner) Run(id string) error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	acc, err := svc.Account.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	currencies, err := svc.Currency.GetAllCurrencies(ctx)
	if err != nil {
		return err
	}

	in := model.AccountInput{
		Name:         acc.Name,
		Type:         acc.Type,
		CurrencyCode: acc.CurrencyCode,
		Active:       acc.Active,
	}
	if err := prompts.PromptAccountForm(&in, false, currencies); err != nil {
		return err
	}

	if _, err := svc.Account.UpdateAccount(ctx, id, in); err != nil {
		r.sess.Logger.Error("update account failed", "id", id, "error", err)
		errhandler.Fail("update account")
		return nil
	}

	pterm.Success.Printf("Account #%s updated successfully\n", id)
	return refreshList(ctx, svc, acc.Type)
}

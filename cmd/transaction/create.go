package transaction

import (
	"time"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createRunner struct {
	sess  *app.Session
	flags *formFlags
	cmd   *cobra.Command
}

func NewCreateCmd(sess *app.Session) *cobra.Command {
	flags := &formFlags{}

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Record a new transaction",
		Long: `Record a withdrawal, deposit or transfer.

A withdrawal moves money from one of your asset accounts to a payee, a
deposit from a payer into an asset account, and a transfer between two asset
accounts.

Examples:
	# Interactive mode
	ffly transaction create

	# Quick mode with flags
	ffly transaction create -t withdrawal -d "Buy Coffee" -a 3.50 --from Checking --to "Coffee Bar"
	ffly transaction create -t deposit -d Salary -a 2500 --from ACME --to Checking --category Income`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	addFormFlags(cmd, flags)
	return cmd
}

func (r *createRunner) Run() error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	choices, err := loadChoices(ctx, svc)
	if err != nil {
		return err
	}

	form := service.NewTransactionForm(time.Now())

	if formFlagsUsed(r.cmd) {
		if err := applyFlags(r.cmd, r.flags, form, choices); err != nil {
			return err
		}
	} else {
		if err := prompts.PromptTransactionKind(form); err != nil {
			return err
		}
		if err := prompts.PromptTransactionForm(form, choices); err != nil {
			return err
		}
	}

	tx, err := svc.Transaction.CreateTransaction(ctx, form)
	if err != nil {
		r.sess.Logger.Error("create transaction failed", "error", err)
		errhandler.Fail("create transaction")
		return nil
	}

	pterm.Success.Printf("Transaction #%s created successfully\n", tx.ID)
	return refreshList(ctx, svc)
}

package transaction

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	sess  *app.Session
	flags *formFlags
	cmd   *cobra.Command
}

func NewEditCmd(sess *app.Session) *cobra.Command {
	flags := &formFlags{}

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction",
		Long: `Edit a transaction. The form starts from the stored values; switching the
type keeps description, amount and date.

Only the first split of a split transaction is edited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	addFormFlags(cmd, flags)
	return cmd
}

func (r *editRunner) Run(id string) error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	tx, err := svc.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}

	choices, err := loadChoices(ctx, svc)
	if err != nil {
		return err
	}

	form := service.TransactionFormFromRecord(tx)

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

	if _, err := svc.Transaction.UpdateTransaction(ctx, id, form); err != nil {
		r.sess.Logger.Error("update transaction failed", "id", id, "error", err)
		errhandler.Fail("update transaction")
		return nil
	}

	pterm.Success.Printf("Transaction #%s updated successfully\n", id)
	return refreshList(ctx, svc)
}

package transaction

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/ui"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	sess *app.Session
	cmd  *cobra.Command
}

func NewDeleteCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and all its splits. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{
				sess: sess,
				cmd:  cmd,
			}
			return runner.Run(args[0])
		},
	}
}

func (r *deleteRunner) Run(id string) error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	// Show what will be deleted first
	tx, err := svc.Transaction.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}
	if err := views.RenderTransactionDeletePreview(tx); err != nil {
		return err
	}

	ok, err := ui.Confirm("Do you want to delete this transaction?")
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := svc.Transaction.DeleteTransaction(ctx, id); err != nil {
		r.sess.Logger.Error("delete transaction failed", "id", id, "error", err)
		errhandler.Fail("delete transaction")
		return nil
	}

	pterm.Success.Printf("Transaction #%s deleted successfully\n", id)
	ui.Separator()
	return refreshList(ctx, svc)
}

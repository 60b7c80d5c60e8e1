package account

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
		Use:   "delete <account-id>",
		Short: "Delete an account",
		Long:  `Delete an account and every transaction booked on it. This action cannot be undone.`,
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

	acc, err := svc.Account.GetAccount(ctx, id)
	if err != nil {
		return err
	}

	pterm.Warning.Printf("About to delete account #%s:\n", acc.ID)
	if err := views.RenderAccountSummary(acc); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")

	ok, err := ui.Confirm("Do you want to delete this account?")
	if err != nil {
		return err
	}
	if !ok {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := svc.Account.DeleteAccount(ctx, id); err != nil {
		r.sess.Logger.Error("delete account failed", "id", id, "error", err)
		errhandler.Fail("delete account")
		return nil
	}

	pterm.Success.Printf("Account #%s deleted successfully\n", id)
	ui.Separator()
	return refreshList(ctx, svc, "")
}

package currency

import (
	"errors"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a currency",
		Long:  `Delete a currency. The default currency can't be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sess.Service()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			current, err := svc.Currency.GetCurrency(ctx, args[0])
			if err != nil {
				return err
			}
			if current.Default {
				return service.ErrDefaultCurrency
			}

			ok, err := ui.Confirm("Delete currency " + current.Code + "?")
			if err != nil {
				return err
			}
			if !ok {
				pterm.Info.Println("Deletion cancelled")
				return nil
			}

			if err := svc.Currency.DeleteCurrency(ctx, current); err != nil {
				if errors.Is(err, service.ErrDefaultCurrency) {
					return err
				}
				sess.Logger.Error("delete currency failed", "code", current.Code, "error", err)
				errhandler.Fail("delete currency")
				return nil
			}

			pterm.Success.Printf("Currency %s deleted successfully\n", current.Code)
			return refreshList(ctx, svc)
		},
	}
}

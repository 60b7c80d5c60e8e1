package currency

import (
	"context"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/service"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCurrencyCmd(sess *app.Session) *cobra.Command {
	currencyCmd := &cobra.Command{
		Use:     "currency",
		Aliases: []string{"cur"},
		Short:   "Create, edit, delete, enable, disable and list currencies",
	}

	currencyCmd.AddCommand(NewListCmd(sess))
	currencyCmd.AddCommand(NewCreateCmd(sess))
	currencyCmd.AddCommand(NewEditCmd(sess))
	currencyCmd.AddCommand(NewDeleteCmd(sess))
	currencyCmd.AddCommand(NewToggleCmd(sess, true))
	currencyCmd.AddCommand(NewToggleCmd(sess, false))
	currencyCmd.AddCommand(NewFlipCmd(sess))

	return currencyCmd
}

func NewListCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List currencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sess.Service()
			if err != nil {
				return err
			}
			return refreshList(cmd.Context(), svc)
		},
	}
}

func refreshList(ctx context.Context, svc *service.Service) error {
	currencies, err := svc.Currency.GetAllCurrencies(ctx)
	if err != nil {
		return err
	}
	return views.RenderCurrencyList(currencies)
}

// reportSaveError shows the server's own message for a rejected save, and a
// generic notice for anything else.
func reportSaveError(sess *app.Session, action string, err error) {
	sess.Logger.Error(action+" failed", "error", err)
	if msg, ok := firefly.ServerMessage(err); ok {
		pterm.Error.Println(msg)
		return
	}
	errhandler.Fail(action)
}

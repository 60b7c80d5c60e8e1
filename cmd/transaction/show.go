package transaction

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewShowCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := sess.Service()
			if err != nil {
				return err
			}

			tx, err := svc.Transaction.GetTransactionByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return views.RenderTransactionDetail(tx)
		},
	}
}

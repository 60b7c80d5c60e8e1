package account

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type string
}

type listRunner struct {
	sess  *app.Session
	flags *listFlags
	cmd   *cobra.Command
}

func NewListCmd(sess *app.Session) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List accounts",
		Long: `List accounts with their current balance.

Examples:
	ffly account list
	ffly account list --type asset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only list accounts of this type: asset, expense, revenue, cash, liability")

	return cmd
}

func (r *listRunner) Run() error {
	accType, err := parseType(r.flags.Type)
	if err != nil {
		return err
	}

	svc, err := r.sess.Service()
	if err != nil {
		return err
	}

	accounts, err := svc.Account.GetAllAccounts(r.cmd.Context(), accType)
	if err != nil {
		return err
	}

	return views.NewAccountListView().Render(accounts)
}

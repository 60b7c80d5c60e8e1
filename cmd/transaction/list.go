package transaction

import (
	"fmt"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/firefly"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type  string
	Page  int
	Start string
	End   string
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
		Short:   "List transactions, newest first",
		Long: `List transactions one page at a time.

Examples:
	ffly transaction list
	ffly transaction list --type withdrawal --page 2
	ffly transaction list --start 2026-10-01 --end 2026-10-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only list withdrawal, deposit or transfer")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 1, "Page number")
	cmd.Flags().StringVar(&flags.Start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.End, "end", "", "Last day (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("start", "end")

	return cmd
}

func (r *listRunner) Run() error {
	filter, err := r.filter()
	if err != nil {
		return err
	}

	svc, err := r.sess.Service()
	if err != nil {
		return err
	}

	page, err := svc.Transaction.GetTransactions(r.cmd.Context(), filter)
	if err != nil {
		return err
	}

	return views.NewTransactionListView().Render(page)
}

func (r *listRunner) filter() (firefly.TransactionFilter, error) {
	f := firefly.TransactionFilter{Page: r.flags.Page}
	if f.Page < 1 {
		return f, fmt.Errorf("page must be 1 or greater")
	}

	if r.flags.Type != "" {
		kind := model.TransactionKind(r.flags.Type)
		if !kind.Valid() {
			return f, fmt.Errorf("unknown transaction type %q (valid: withdrawal, deposit, transfer)", r.flags.Type)
		}
		f.Type = kind
	}

	if r.flags.Start != "" {
		period, err := model.ParsePeriod(r.flags.Start, r.flags.End)
		if err != nil {
			return f, err
		}
		f.Start, f.End = period.StartString(), period.EndString()
	}
	return f, nil
}

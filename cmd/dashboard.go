package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/constants"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

type dashboardFlags struct {
	Month string
	Start string
	End   string
}

type dashboardRunner struct {
	sess  *app.Session
	flags *dashboardFlags
	cmd   *cobra.Command
}

func NewDashboardCmd(sess *app.Session) *cobra.Command {
	flags := &dashboardFlags{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "d"},
		Short:   "Show net worth, income, expenses and top categories",
		Long: `Show the dashboard for one month: net worth across asset accounts,
income and expenses of the period, the five biggest expense categories, and
the most recent transactions.

Examples:
	# Current month
	ffly dashboard

	# A given month
	ffly dashboard --month 2026-09

	# Any range of days
	ffly dashboard --start 2026-09-15 --end 2026-10-14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &dashboardRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month to show (YYYY-MM), default is the current month")
	cmd.Flags().StringVar(&flags.Start, "start", "", "First day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.End, "end", "", "Last day of the period (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("start", "end")
	cmd.MarkFlagsMutuallyExclusive("month", "start")

	return cmd
}

func (r *dashboardRunner) Run() error {
	period, err := dashboardPeriod(r.flags, time.Now())
	if err != nil {
		return err
	}

	a, err := r.sess.App()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	metrics, err := a.Service.Dashboard.GetMetrics(ctx, period)
	if err != nil {
		return err
	}

	recent, err := a.Service.Transaction.GetRecentTransactions(ctx, constants.RecentTransactions)
	if err != nil {
		return err
	}

	return views.RenderDashboard(metrics, recent)
}

func dashboardPeriod(flags *dashboardFlags, now time.Time) (model.Period, error) {
	switch {
	case flags.Start != "" || flags.End != "":
		return model.ParsePeriod(flags.Start, flags.End)
	case flags.Month != "":
		month, err := time.Parse(constants.MonthFormat, flags.Month)
		if err != nil {
			return model.Period{}, fmt.Errorf("invalid month %q, expected YYYY-MM", flags.Month)
		}
		return model.MonthPeriod(month), nil
	default:
		return model.MonthPeriod(now), nil
	}
}

package account

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/hance08/ffly/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name     string
	Type     string
	Currency string
	Balance  string
}

type createRunner struct {
	sess  *app.Session
	flags *createFlags
	cmd   *cobra.Command
}

func NewCreateCmd(sess *app.Session) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account on the server.

Asset accounts are created as default asset accounts. A non-zero opening
balance is booked on today's date.

Examples:
	# Interactive mode
	ffly account create

	# Quick mode with flags
	ffly account create -n Bank -t asset --currency EUR -b 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: asset, expense, revenue, cash, liability")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to the server's default currency)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance")

	return cmd
}

func (r *createRunner) Run() error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	in := model.AccountInput{Active: true}

	if r.cmd.Flags().Changed("name") {
		if err := r.fromFlags(&in); err != nil {
			return err
		}
	} else {
		currencies, err := svc.Currency.GetAllCurrencies(ctx)
		if err != nil {
			return err
		}
		if err := prompts.PromptAccountForm(&in, true, currencies); err != nil {
			return err
		}
	}

	acc, err := svc.Account.CreateAccount(ctx, in)
	if err != nil {
		r.sess.Logger.Error("create account failed", "error", err)
		errhandler.Fail("create account")
		return nil
	}

	if err := views.RenderAccountSummary(acc); err != nil {
		return err
	}
	pterm.Success.Println("Account created successfully!")

	return refreshList(ctx, svc, acc.Type)
}

func (r *createRunner) fromFlags(in *model.AccountInput) error {
	if err := validation.ValidateName(r.flags.Name); err != nil {
		return err
	}
	accType, err := parseType(r.flags.Type)
	if err != nil {
		return err
	}
	if accType == "" {
		accType = model.AccountAsset
	}
	if err := validation.ValidateOpeningBalance(r.flags.Balance); err != nil {
		return err
	}

	in.Name = r.flags.Name
	in.Type = accType
	in.CurrencyCode = r.flags.Currency
	in.OpeningBalance = r.flags.Balance
	return nil
}

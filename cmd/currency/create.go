package currency

import (
	"fmt"

	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/hance08/ffly/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type currencyFlags struct {
	Code     string
	Name     string
	Symbol   string
	Decimals int
}

type createRunner struct {
	sess  *app.Session
	flags *currencyFlags
	cmd   *cobra.Command
}

func NewCreateCmd(sess *app.Session) *cobra.Command {
	flags := &currencyFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a currency",
		Long: `Create a currency. New currencies are enabled right away.

Examples:
	# Interactive mode
	ffly currency create

	# Quick mode with flags
	ffly currency create --code TWD --name "Taiwan Dollar" --symbol NT$ --decimals 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	addCurrencyFlags(cmd, flags)
	return cmd
}

func addCurrencyFlags(cmd *cobra.Command, flags *currencyFlags) {
	cmd.Flags().StringVar(&flags.Code, "code", "", "ISO 4217 currency code")
	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Currency name")
	cmd.Flags().StringVarP(&flags.Symbol, "symbol", "s", "", "Currency symbol")
	cmd.Flags().IntVarP(&flags.Decimals, "decimals", "d", 2, "Decimal places")
}

func (r *createRunner) Run() error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	in := model.CurrencyInput{DecimalPlaces: 2}
	if r.cmd.Flags().Changed("code") {
		in = model.CurrencyInput{
			Code:          r.flags.Code,
			Name:          r.flags.Name,
			Symbol:        r.flags.Symbol,
			DecimalPlaces: r.flags.Decimals,
		}
		if err := validateInput(in); err != nil {
			return err
		}
	} else if err := prompts.PromptCurrencyForm(&in); err != nil {
		return err
	}

	c, err := svc.Currency.CreateCurrency(ctx, in)
	if err != nil {
		reportSaveError(r.sess, "create currency", err)
		return nil
	}

	pterm.Success.Printf("Currency %s created successfully\n", c.Code)
	return refreshList(ctx, svc)
}

func validateInput(in model.CurrencyInput) error {
	if err := validation.ValidateCurrencyCode(in.Code); err != nil {
		return err
	}
	if err := validation.Required("name")(in.Name); err != nil {
		return err
	}
	if err := validation.Required("symbol")(in.Symbol); err != nil {
		return err
	}
	return validation.ValidateDecimalPlaces(fmt.Sprint(in.DecimalPlaces))
}

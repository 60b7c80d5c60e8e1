package currency

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/model"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	sess  *app.Session
	flags *currencyFlags
	cmd   *cobra.Command
}

func NewEditCmd(sess *app.Session) *cobra.Command {
	flags := &currencyFlags{}

	cmd := &cobra.Command{
		Use:   "edit <code>",
		Short: "Edit a currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	addCurrencyFlags(cmd, flags)
	return cmd
}

func (r *editRunner) Run(code string) error {
	svc, err := r.sess.Service()
	if err != nil {
		return err
	}
	ctx := r.cmd.Context()

	current, err := svc.Currency.GetCurrency(ctx, code)
	if err != nil {
		return err
	}

	in := model.CurrencyInput{
		Code:          current.Code,
		Name:          current.Name,
		Symbol:        current.Symbol,
		DecimalPlaces: current.DecimalPlaces,
	}

	flags := r.cmd.Flags()
	if flags.Changed("code") || flags.Changed("name") || flags.Changed("symbol") || flags.Changed("decimals") {
		if flags.Changed("code") {
			in.Code = r.flags.Code
		}
		if flags.Changed("name") {
			in.Name = r.flags.Name
		}
		if flags.Changed("symbol") {
			in.Symbol = r.flags.Symbol
		}
		if flags.Changed("decimals") {
			in.DecimalPlaces = r.flags.Decimals
		}
		if err := validateInput(in); err != nil {
			return err
		}
	} else if err := prompts.PromptCurrencyForm(&in); err != nil {
		return err
	}

	if _, err := svc.Currency.UpdateCurrency(ctx, current, in); err != nil {
		reportSaveError(r.sess, "update currency", err)
		return nil
	}

	pterm.Success.Printf("Currency %s updated successfully\n", current.Code)
	return refreshList(ctx, svc)
}

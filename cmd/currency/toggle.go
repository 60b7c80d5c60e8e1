package currency

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewToggleCmd returns the enable command, or the disable command when
// enable is false.
func NewToggleCmd(sess *app.Session, enable bool) *cobra.Command {
	use, short, done := "enable <code>", "Enable a currency", "enabled"
	if !enable {
		use, short, done = "disable <code>", "Disable a currency", "disabled"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
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
			if current.Enabled == enable {
				pterm.Info.Printf("Currency %s is already %s\n", current.Code, done)
				return nil
			}

			if err := svc.Currency.SetEnabled(ctx, current.Code, enable); err != nil {
				sess.Logger.Error("toggle currency failed", "code", current.Code, "error", err)
				errhandler.Fail("update currency " + current.Code)
				return nil
			}

			pterm.Success.Printf("Currency %s %s\n", current.Code, done)
			return refreshList(ctx, svc)
		},
	}
}

// NewFlipCmd switches a currency to the opposite of its current state.
func NewFlipCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <code>",
		Short: "Enable a disabled currency or disable an enabled one",
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

			enabled, err := svc.Currency.Toggle(ctx, current)
			if err != nil {
				sess.Logger.Error("toggle currency failed", "code", current.Code, "error", err)
				errhandler.Fail("update currency " + current.Code)
				return nil
			}

			if enabled {
				pterm.Success.Printf("Currency %s enabled\n", current.Code)
			} else {
				pterm.Success.Printf("Currency %s disabled\n", current.Code)
			}
			return refreshList(ctx, svc)
		},
	}
}

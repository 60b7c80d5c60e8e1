package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hance08/ffly/cmd/account"
	"github.com/hance08/ffly/cmd/category"
	"github.com/hance08/ffly/cmd/currency"
	"github.com/hance08/ffly/cmd/transaction"
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/config"
	"github.com/hance08/ffly/internal/errhandler"
	"github.com/hance08/ffly/internal/logger"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	sess := &app.Session{}
	if err := NewRootCmd(sess).Execute(); err != nil {
		errhandler.HandleError(err)
	}
}

// NewRootCmd builds the command tree. sess is filled in once, before any
// subcommand runs.
func NewRootCmd(sess *app.Session) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "ffly",
		Short: "ffly is a terminal client for Firefly III",
		Long: `ffly is a terminal client for a Firefly III personal finance server.

Log in once with a personal access token, then manage accounts, categories,
currencies and transactions, or look at the monthly dashboard.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSession(sess, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error or off")

	rootCmd.AddCommand(NewLoginCmd(sess))
	rootCmd.AddCommand(NewLogoutCmd(sess))
	rootCmd.AddCommand(NewInfoCmd(sess))
	rootCmd.AddCommand(NewDashboardCmd(sess))

	rootCmd.AddCommand(account.NewAccountCmd(sess))
	rootCmd.AddCommand(category.NewCategoryCmd(sess))
	rootCmd.AddCommand(currency.NewCurrencyCmd(sess))
	rootCmd.AddCommand(transaction.NewTransactionCmd(sess))

	return rootCmd
}

func loadSession(sess *app.Session, flags *rootFlags) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	store, err := config.Open(flags.ConfigFile)
	if err != nil {
		return err
	}

	cfg, err := store.Config()
	if err != nil {
		return err
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}

	log, err := logger.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	sess.Store = store
	sess.Config = cfg
	sess.Logger = log
	return nil
}

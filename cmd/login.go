package cmd

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type loginFlags struct {
	URL   string
	Token string
}

type loginRunner struct {
	sess  *app.Session
	flags *loginFlags
	cmd   *cobra.Command
}

func NewLoginCmd(sess *app.Session) *cobra.Command {
	flags := &loginFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the Firefly III server URL and access token",
		Long: `Save the Firefly III server URL and a personal access token to the config file.

Create a token in Firefly III under Profile > OAuth > Personal Access Tokens.

Examples:
	# Interactive mode
	ffly login

	# Quick mode with flags
	ffly login --url https://firefly.example.com --token eyJ0eXAi...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &loginRunner{
				sess:  sess,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.URL, "url", "u", "", "Firefly III server URL")
	cmd.Flags().StringVarP(&flags.Token, "token", "t", "", "Personal access token")

	return cmd
}

func (r *loginRunner) Run() error {
	url, token := r.flags.URL, r.flags.Token

	if url == "" || token == "" {
		if url == "" {
			url = r.sess.Config.Firefly.URL
		}
		if err := prompts.PromptLogin(&url, &token); err != nil {
			return err
		}
	} else if err := prompts.ValidateServerURL(url); err != nil {
		return err
	}

	if err := r.sess.Store.SetCredentials(url, token); err != nil {
		return err
	}
	r.sess.Config.Firefly.URL = url
	r.sess.Config.Firefly.Token = token

	pterm.Success.Printf("Credentials saved to %s\n", r.sess.Store.Path())

	svc, err := r.sess.Service()
	if err != nil {
		return err
	}

	accounts, err := svc.Account.GetAssetAccounts(r.cmd.Context())
	if err != nil {
		r.sess.Logger.Error("server check failed", "error", err)
		pterm.Warning.Println("Could not reach the server with these credentials")
		return nil
	}

	pterm.Info.Printf("Connected, %d asset accounts found\n", len(accounts))
	return nil
}

func NewLogoutCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved server URL and access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sess.Store.ClearCredentials(); err != nil {
				return err
			}
			pterm.Success.Println("Logged out")
			return nil
		},
	}
}

package cmd

import (
	"github.com/hance08/ffly/internal/app"
	"github.com/hance08/ffly/internal/config"
	"github.com/hance08/ffly/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	sess *app.Session
}

func NewInfoCmd(sess *app.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, server connection settings, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				sess: sess,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.sess.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		ServerURL:  cfg.Firefly.URL,
		TokenSet:   cfg.Firefly.Token != "",
		LogLevel:   cfg.Log.Level,
		Timeout:    cfg.HTTP.Timeout,
		RateLimit:  cfg.HTTP.RateLimit,
		AppDataDir: getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := config.AppDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

package views

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath string
	ServerURL  string
	TokenSet   bool
	LogLevel   string
	Timeout    time.Duration
	RateLimit  float64
	AppDataDir string
}

func RenderSystemInfo(data SystemInfoItem) error {
	server := data.ServerURL
	if server == "" {
		server = pterm.Red("Not set (run 'ffly login')")
	}

	tokenStatus := pterm.Green("Set")
	if !data.TokenSet {
		tokenStatus = pterm.Red("Not set")
	}

	rateLimit := "Unlimited"
	if data.RateLimit > 0 {
		rateLimit = fmt.Sprintf("%g req/s", data.RateLimit)
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Server URL", server},
		{"Access Token", tokenStatus},
		{"Request Timeout", data.Timeout.String()},
		{"Rate Limit", rateLimit},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

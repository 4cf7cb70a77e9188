package cmd

import (
	"context"
	"time"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

const reachabilityTimeout = 3 * time.Second

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, backend address and reachability, log file and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	configPath := r.app.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), reachabilityTimeout)
	defer cancel()
	_, err := r.app.Client.ListUsers(ctx)

	items := views.SystemInfoItem{
		ConfigPath:         configPath,
		APIBaseURL:         r.app.Client.BaseURL(),
		BackendReachable:   err == nil,
		DefaultCurrency:    r.app.Config.Display.Currency,
		TransactionsTarget: r.app.Config.Display.TransactionsTarget,
		LogPath:            r.app.Config.Log.Path,
		AppDataDir:         getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(cmd.OutOrStdout(), items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

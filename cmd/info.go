package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/ui/views"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbExists := false
	if _, err := os.Stat(r.app.DBPath); err == nil {
		dbExists = true
	}

	book := r.app.Service.Book()
	items := views.SystemInfoItem{
		ConfigPath:        configPath,
		DBPath:            r.app.DBPath,
		DBExists:          dbExists,
		DefaultCurrencies: cfg.Defaults.Currencies,
		FeeRate:           cfg.Fees.Rate,
		AppDataDir:        getAppDataDirOrUnknown(),
		Accounts:          len(book.Accounts()),
		Journals:          len(book.Journals()),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

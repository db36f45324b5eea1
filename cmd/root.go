package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/ledger/cmd/account"
	"github.com/hance08/ledger/cmd/journal"
	"github.com/hance08/ledger/internal/app"
	"github.com/hance08/ledger/internal/config"
	"github.com/hance08/ledger/internal/errhandler"
	"github.com/hance08/ledger/internal/ui/prompts"
)

var (
	cfgFile string
	envFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, cleanup := NewRootCmd(migrations)
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		errhandler.Exit(err)
	}
}

// NewRootCmd builds the command tree. The application is opened lazily in
// PersistentPreRunE so --config is honoured; the returned func closes it.
func NewRootCmd(migrations fs.FS) (*cobra.Command, func()) {
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "ledger is a multi-asset double-entry bookkeeping CLI",
		Long: `ledger keeps multi-asset double-entry books: accounts hold balances per
asset (EUR, BTC, ...), journals move value between them and are only
accepted when debits equal credits for every asset.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			built, closeApp, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = closeApp
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load LEDGER_* variables from this .env file")

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(journal.NewJournalCmd(application))

	rootCmd.AddCommand(NewDepositCmd(application))
	rootCmd.AddCommand(NewExchangeCmd(application))
	rootCmd.AddCommand(NewReportCmd(application))
	rootCmd.AddCommand(NewLoadCmd(application))
	rootCmd.AddCommand(NewVerifyCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))

	return rootCmd, func() { cleanup() }
}

func initConfig() error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}

	defaults := config.NewDefault()
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("fees.rate", defaults.Fees.Rate)
	viper.SetDefault("fees.places", defaults.Fees.Places)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("LEDGER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	if !viper.IsSet("defaults.currencies") {
		currencies, err := initWizard(defaults.Defaults.Currencies)
		if err != nil {
			return err
		}
		viper.Set("defaults.currencies", currencies)
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}
	cfg.Defaults.Currencies = cfg.Currencies()
	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// initWizard asks for the default currencies on the first interactive run
// and saves them. Without a terminal the built-in defaults are used.
func initWizard(fallback []string) ([]string, error) {
	if !isTerminal() {
		return fallback, nil
	}

	currencies, err := prompts.PromptInitCurrencies(fallback)
	if err != nil {
		return nil, err
	}

	viper.Set("defaults.currencies", currencies)
	if err := viper.WriteConfig(); err != nil {
		return nil, fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currencies set to: %s\n", strings.Join(currencies, ", "))

	return currencies, nil
}

func isTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

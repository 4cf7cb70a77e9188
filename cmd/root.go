package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/fintrack/cmd/transaction"
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/errhandler"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	// firstRun is set when the config file did not exist before this start.
	firstRun bool
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	application := &app.App{}
	var cleanup func()

	rootCmd := &cobra.Command{
		Use:   "fintrack",
		Short: "fintrack is a CLI/TUI front-end for a personal finance tracker",
		Long: `fintrack is a CLI/TUI front-end for a personal finance tracker.

It loads users, categories and payment methods from the tracker backend,
records new transactions and renders the transaction list.
Run without a subcommand to start the interactive session.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			if firstRun && isInteractive(cmd) {
				currency, err := initWizard()
				if err != nil {
					return err
				}
				cfg.Display.Currency = currency
			}

			built, closeApp, err := app.NewApp(cfg, os.Stdout)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = closeApp
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &uiRunner{app: application, out: cmd.OutOrStdout()}
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewUICmd(application))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))
	rootCmd.AddCommand(NewTxListCmd(application))
	rootCmd.AddCommand(NewRefsCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewDevServerCmd(application, migrations))

	err := rootCmd.Execute()
	if cleanup != nil {
		cleanup()
	}
	if err != nil {
		os.Exit(errhandler.HandleError(os.Stderr, err))
	}
}

func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Annotations[annotationInteractive] == "true"
}

func initConfig() error {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	appDir, err := app.GetAppDataDir()
	if err != nil {
		return fmt.Errorf("error getting app dir: %w", err)
	}

	defaults := config.NewDefault()
	defaults.Log.Path = filepath.Join(appDir, "fintrack.log")
	defaults.DevServer.DBPath = filepath.Join(appDir, "devserver.db")
	defaults.SetDefaults(viper.SetDefault)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("FINTRACK")
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

	cfg = defaults
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()
	if p, err := expandPath(cfg.Log.Path); err == nil {
		cfg.Log.Path = p
	}
	if p, err := expandPath(cfg.DevServer.DBPath); err == nil {
		cfg.DevServer.DBPath = p
	}

	return nil
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
	firstRun = true

	return nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

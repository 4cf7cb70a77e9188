package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hance08/fintrack/internal/api"
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/ui/notify"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config   *config.Config
	Client   *api.Client
	Page     *page.Page
	Notifier *notify.Notifier
	Service  *service.Service
	Log      *logrus.Logger
}

// NewApp initialize logger, api client, page and core logic, then return App entity
func NewApp(cfg *config.Config, out io.Writer) (*App, func(), error) {
	logPath := cfg.Log.Path
	if logPath == "" {
		appDir, err := GetAppDataDir()
		if err != nil {
			return nil, nil, err
		}
		logPath = filepath.Join(appDir, "fintrack.log")
	}

	log, closeLog, err := utils.NewLogger(cfg.Log.Level, logPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, nil, log)
	p := page.New(cfg.Display.TransactionsTarget)
	notifier := notify.New(p, out)

	svc, err := service.NewService(client, p, notifier, cfg, log)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to bind page: %w", err)
	}

	log.WithField("base_url", client.BaseURL()).Debug("app initialized")

	return &App{
		Config:   cfg,
		Client:   client,
		Page:     p,
		Notifier: notifier,
		Service:  svc,
		Log:      log,
	}, closeLog, nil
}

// GetAppDataDir returns the directory holding the log file and the devserver database.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".fintrack"), nil
	}

	return filepath.Join(configDir, "fintrack"), nil
}

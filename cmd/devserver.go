package cmd

import (
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/devserver"
	"github.com/hance08/fintrack/internal/store"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type devServerFlags struct {
	Addr   string
	DBPath string
	NoSeed bool
}

type devServerRunner struct {
	app        *app.App
	migrations fs.FS
	flags      *devServerFlags
}

func NewDevServerCmd(application *app.App, migrations fs.FS) *cobra.Command {
	flags := &devServerFlags{}

	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run a local backend for development",
		Long: `Run a local backend that speaks the same REST API as the tracker backend.

Data is kept in a SQLite file. On first start the reference tables are filled
with demo users, categories and payment methods unless seeding is disabled.

Examples:
  fintrack devserver
  fintrack devserver --addr :9000 --db ./dev.db --no-seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &devServerRunner{
				app:        application,
				migrations: migrations,
				flags:      flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", "", "Listen address (default from devserver.addr)")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "SQLite database path (default from devserver.db_path)")
	cmd.Flags().BoolVar(&flags.NoSeed, "no-seed", false, "Do not insert demo reference data")

	return cmd
}

func (r *devServerRunner) Run(cmd *cobra.Command) error {
	conf := r.app.Config.DevServer
	if r.flags.Addr != "" {
		conf.Addr = r.flags.Addr
	}
	if r.flags.DBPath != "" {
		conf.DBPath = r.flags.DBPath
	}
	if r.flags.NoSeed {
		conf.Seed = false
	}

	repo, err := store.NewStore(conf.DBPath, r.migrations)
	if err != nil {
		return err
	}
	defer repo.Close()

	if conf.Seed {
		if err := devserver.Seed(repo); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("Serving %s on %s (Ctrl+C to stop)", conf.DBPath, conf.Addr)
	router := devserver.NewRouter(devserver.NewHandler(repo, r.app.Log))
	if err := devserver.Run(ctx, conf.Addr, router, r.app.Log); err != nil {
		return err
	}

	pterm.Success.Println("Devserver stopped")
	return nil
}

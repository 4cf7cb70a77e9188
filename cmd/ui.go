package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hance08/fintrack/cmd/transaction"
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/errhandler"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const annotationInteractive = "interactive"

type uiRunner struct {
	app *app.App
	out io.Writer
}

func NewUICmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:         "ui",
		Short:       "Start the interactive session",
		Long:        `Load the form options and the transaction list, then add transactions from a menu.`,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &uiRunner{
				app: application,
				out: cmd.OutOrStdout(),
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *uiRunner) Run(ctx context.Context) error {
	ui.FprintL1Title(r.out, "fintrack")

	// failures already surfaced as banners
	if err := r.app.Service.Sequencer.Bootstrap(ctx); err != nil {
		r.app.Log.WithError(err).Warn("bootstrap incomplete")
	}
	if err := r.renderTable(); err != nil {
		return err
	}

	for {
		choice, err := prompts.PromptMainMenu()
		if err != nil {
			if errhandler.IsInterrupt(err) {
				return nil
			}
			return err
		}

		switch choice {
		case prompts.MenuAdd:
			if err := r.add(ctx); err != nil {
				return err
			}
		case prompts.MenuRefresh:
			if err := r.app.Service.Renderer.LoadTransactions(ctx); err == nil {
				if err := r.renderTable(); err != nil {
					return err
				}
			}
		case prompts.MenuRefs:
			if err := renderReferences(r.out, r.app.Service.Renderer.Targets()); err != nil {
				return err
			}
		case prompts.MenuDismiss:
			container := r.app.Page.EnsureAlertContainer()
			n := len(container.Banners())
			container.DismissAll()
			pterm.Info.WithWriter(r.out).Printfln("Dismissed %d alert(s)", n)
		case prompts.MenuQuit:
			return nil
		}
	}
}

func (r *uiRunner) add(ctx context.Context) error {
	form, err := r.app.Page.Form(constants.ElemTransactionForm)
	if err != nil {
		return err
	}

	submitted, err := transaction.PromptAndConfirm(r.out, form, r.app.Config.Display.Currency)
	if err != nil {
		if errors.Is(err, prompts.ErrNoOptions) {
			pterm.Warning.WithWriter(r.out).Println(errhandler.Capitalize(err.Error()))
			return nil
		}
		if errhandler.IsInterrupt(err) {
			pterm.Info.WithWriter(r.out).Println("Transaction discarded")
			return nil
		}
		return err
	}
	if !submitted {
		return nil
	}

	// failures are reported by the binder and keep the session alive
	if err := form.Submit(ctx); err != nil {
		r.app.Log.WithError(err).Debug("submit rejected")
		return nil
	}
	return r.renderTable()
}

func (r *uiRunner) renderTable() error {
	views.RenderAlerts(r.out, r.app.Page.EnsureAlertContainer())
	return views.NewTransactionListView(r.out).Render(r.app.Service.Renderer.Targets().Transactions)
}

func initWizard() (string, error) {
	currentDefault := viper.GetString("display.currency")
	if currentDefault == "" {
		currentDefault = "USD"
	}

	pterm.Info.Println("First run: choose the currency amounts are displayed in.")
	currency, err := prompts.PromptDisplayCurrency(currentDefault)
	if err != nil {
		return "", err
	}

	viper.Set("display.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Display currency set to: %s\n", currency)

	return currency, nil
}

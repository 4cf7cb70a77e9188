package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/prompts"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	app *app.App
	yes bool
}

func NewDeleteCmd(application *app.App) *cobra.Command {
	runner := &deleteRunner{app: application}

	cmd := &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction on the backend. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(cmd *cobra.Command, args []string) error {
	txID, err := parseTxID(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	// show what will be deleted first
	tx, err := r.app.Client.GetTransaction(ctx, txID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	pterm.Warning.WithWriter(out).Printfln("About to delete transaction #%d:", tx.ID)
	if err := views.RenderTransactionDetail(out, *tx, r.app.Config.Display.Currency, time.Local); err != nil {
		return err
	}

	if !r.yes {
		pterm.Warning.WithWriter(out).Println("This action cannot be undone!")

		confirmed, err := prompts.PromptConfirm("Do you want to delete this transaction?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.WithWriter(out).Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.app.Client.DeleteTransaction(ctx, txID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	pterm.Success.WithWriter(out).Printfln("Transaction #%d deleted successfully", txID)
	ui.Separator(out)
	return nil
}

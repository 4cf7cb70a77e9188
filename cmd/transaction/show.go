package transaction

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				app: application,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *ShowCommandRunner) Run(cmd *cobra.Command, args []string) error {
	txID, err := parseTxID(args[0])
	if err != nil {
		return err
	}

	tx, err := r.app.Client.GetTransaction(cmd.Context(), txID)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	return views.RenderTransactionDetail(cmd.OutOrStdout(), *tx, r.app.Config.Display.Currency, time.Local)
}

func parseTxID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID: %s", raw)
	}
	return id, nil
}

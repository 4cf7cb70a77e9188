package transaction

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	app *app.App
}

func NewListCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions (alias: tls)",
		Long: `List the transactions recorded by the backend.

This command displays a table of transactions with their details including
user, category, payment method, amount, note and local date.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app: application,
			}
			return runner.Run(cmd)
		},
	}
}

func (r *listRunner) Run(cmd *cobra.Command) error {
	renderer := r.app.Service.Renderer
	if err := renderer.LoadTransactions(cmd.Context()); err != nil {
		return err
	}

	return views.NewTransactionListView(cmd.OutOrStdout()).Render(renderer.Targets().Transactions)
}

package transaction

import (
	"github.com/hance08/fintrack/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: add, list, view details, edit or delete.",
	}

	cmd.AddCommand(NewAddCmd(application))
	cmd.AddCommand(NewListCmd(application))
	cmd.AddCommand(NewShowCmd(application))
	cmd.AddCommand(NewEditCmd(application))
	cmd.AddCommand(NewDeleteCmd(application))

	return cmd
}

package cmd

import (
	"github.com/hance08/fintrack/cmd/transaction"
	"github.com/hance08/fintrack/internal/app"
	"github.com/spf13/cobra"
)

// NewTxListCmd is the root level shortcut for "transaction list".
func NewTxListCmd(application *app.App) *cobra.Command {
	cmd := transaction.NewListCmd(application)
	cmd.Use = "tx-list"
	cmd.Aliases = []string{"tls"}
	cmd.Short = "List transactions (alias: tls)"
	return cmd
}

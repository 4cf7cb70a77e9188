package views

import (
	"io"

	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/pterm/pterm"
)

var transactionHeader = []string{"ID", "User", "Category", "Payment Method", "Amount", "Note", "Date"}

type TransactionListView struct {
	out io.Writer
}

func NewTransactionListView(out io.Writer) *TransactionListView {
	return &TransactionListView{out: out}
}

// Render prints the rows currently held by body.
func (v *TransactionListView) Render(body *page.TableBody) error {
	rows := body.Rows()
	if len(rows) == 0 {
		pterm.Warning.WithWriter(v.out).Println("No transactions found")
		return nil
	}

	ui.FprintL2Title(v.out, "Transactions")

	tableData := pterm.TableData{transactionHeader}
	for _, row := range rows {
		if len(row) > 4 {
			row[4] = pterm.Red(row[4])
		}
		tableData = append(tableData, row)
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithWriter(v.out).
		WithData(tableData).
		Render(); err != nil {
		return err
	}
	pterm.Info.WithWriter(v.out).Printfln("Total: %d transactions", len(rows))
	return nil
}

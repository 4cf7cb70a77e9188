package views

import (
	"fmt"
	"io"
	"time"

	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(w io.Writer, tx model.Transaction, currency string, loc *time.Location) error {
	kind := pterm.Red("Expense")
	if tx.IsDeposit {
		kind = pterm.Green("Deposit")
	}

	note := tx.NoteText()
	if note == "" {
		note = "-"
	}

	pterm.Fprintln(w)
	ui.FprintL2Title(w, "Transaction #%d", tx.ID)
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Date", utils.FormatLocalTimestamp(tx.Timestamp, loc)},
		{"Type", kind},
		{"User", tx.User},
		{"Category", tx.Category},
		{"Payment Method", tx.PaymentMethod},
		{"Amount", utils.FormatCurrency(tx.Amount, currency)},
		{"Note", note},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithWriter(w).
		WithData(infoData).
		Render()
}

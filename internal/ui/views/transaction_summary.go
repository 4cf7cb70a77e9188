package views

import (
	"io"

	"github.com/pterm/pterm"
)

// DraftSummaryItem is the human readable form of a draft about to be sent.
type DraftSummaryItem struct {
	User          string
	Category      string
	PaymentMethod string
	Amount        string
	Note          string
}

func RenderDraftSummary(w io.Writer, data DraftSummaryItem) error {
	note := data.Note
	if note == "" {
		note = "-"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{pterm.Blue("User"), data.User},
		{pterm.Blue("Category"), data.Category},
		{pterm.Blue("Payment Method"), data.PaymentMethod},
		{pterm.Blue("Amount"), data.Amount},
		{pterm.Blue("Note"), note},
	}

	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(tableData).Render()
}

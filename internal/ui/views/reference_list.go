package views

import (
	"io"

	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/pterm/pterm"
)

type ReferenceList struct {
	Title  string
	Select *page.Select
}

type ReferenceListView struct {
	out io.Writer
}

func NewReferenceListView(out io.Writer) *ReferenceListView {
	return &ReferenceListView{out: out}
}

func (v *ReferenceListView) Render(lists ...ReferenceList) error {
	for _, list := range lists {
		ui.FprintL2Title(v.out, "%s", list.Title)

		options := list.Select.Options()
		if len(options) == 0 {
			pterm.Warning.WithWriter(v.out).Println("None")
			continue
		}

		tableData := pterm.TableData{{"ID", "Name"}}
		for _, o := range options {
			tableData = append(tableData, []string{pterm.Gray(o.Value), o.Label})
		}

		if err := pterm.DefaultTable.WithHasHeader().WithWriter(v.out).WithData(tableData).Render(); err != nil {
			return err
		}
		pterm.Fprintln(v.out)
	}
	return nil
}

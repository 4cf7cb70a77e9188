package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

func FprintL1Title(w io.Writer, format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	pterm.Fprintln(w, style.Sprint(paddedText))
}

func FprintL2Title(w io.Writer, format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	pterm.Fprintln(w, style.Sprint(paddedText))
}

// Separator prints a green separator line.
func Separator(w io.Writer) {
	pterm.Fprintln(w, pterm.Green("----------------------------------------"))
}

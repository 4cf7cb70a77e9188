package views

import (
	"io"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/pterm/pterm"
)

// RenderAlerts prints every live banner of the container.
func RenderAlerts(w io.Writer, container *page.AlertContainer) {
	for _, b := range container.Banners() {
		printer := pterm.Success
		if b.Level == constants.LevelDanger {
			printer = pterm.Error
		}
		printer.WithWriter(w).Printfln("[#%d] %s", b.ID, b.Message)
	}
}

package notify

import (
	"io"
	"os"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/pterm/pterm"
)

// Notifier shows status banners in the page's alert container.
type Notifier struct {
	page *page.Page
	out  io.Writer
}

func New(p *page.Page, out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{page: p, out: out}
}

// Show appends a banner and prints it. An empty level means success.
func (n *Notifier) Show(message, level string) page.Banner {
	if level == "" {
		level = constants.LevelSuccess
	}

	banner := n.page.EnsureAlertContainer().Append(message, level)

	printer := pterm.Success
	if level == constants.LevelDanger {
		printer = pterm.Error
	}
	printer.WithWriter(n.out).Printfln("[#%d] %s", banner.ID, message)

	return banner
}

func (n *Notifier) Success(message string) page.Banner {
	return n.Show(message, constants.LevelSuccess)
}

func (n *Notifier) Danger(message string) page.Banner {
	return n.Show(message, constants.LevelDanger)
}

// Dismiss removes a banner by id.
func (n *Notifier) Dismiss(id int) bool {
	return n.page.EnsureAlertContainer().Dismiss(id)
}

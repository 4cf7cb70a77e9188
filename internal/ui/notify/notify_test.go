package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/pterm/pterm"
)

func TestShowCreatesContainerOnce(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var out bytes.Buffer
	p := page.New("")
	n := New(p, &out)

	first := n.Show("Transaction added!", "")
	second := n.Danger("Failed to load transactions")

	if first.Level != "success" {
		t.Errorf("Expected default level success, got %q", first.Level)
	}
	if second.Level != "danger" {
		t.Errorf("Expected danger, got %q", second.Level)
	}

	banners := p.EnsureAlertContainer().Banners()
	if len(banners) != 2 {
		t.Fatalf("Expected 2 banners, got %d", len(banners))
	}

	text := out.String()
	if !strings.Contains(text, "Transaction added!") || !strings.Contains(text, "Failed to load transactions") {
		t.Errorf("Expected both messages printed, got %q", text)
	}
}

func TestDismiss(t *testing.T) {
	var out bytes.Buffer
	p := page.New("")
	n := New(p, &out)

	b := n.Success("saved")
	if !n.Dismiss(b.ID) {
		t.Fatal("Expected banner to be dismissed")
	}
	if len(p.EnsureAlertContainer().Banners()) != 0 {
		t.Error("Expected no banners left")
	}
}

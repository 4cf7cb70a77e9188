package transaction

import (
	"testing"

	"github.com/hance08/fintrack/internal/ui/page"
)

func TestResolveOption(t *testing.T) {
	sel := page.NewSelect("category")
	sel.Append(page.Option{Label: "Groceries", Value: "1"})
	sel.Append(page.Option{Label: "Transport", Value: "2"})
	sel.Append(page.Option{Label: "3", Value: "7"})

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "By id", raw: "2", expected: "2"},
		{name: "By name", raw: "Groceries", expected: "1"},
		{name: "Name case insensitive", raw: " transport ", expected: "2"},
		{name: "Numeric name", raw: "3", expected: "7"},
		{name: "Unknown kept", raw: "Rent", expected: "Rent"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveOption(sel, tc.raw); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestParseTxID(t *testing.T) {
	testCases := []struct {
		raw     string
		id      int64
		wantErr bool
	}{
		{raw: "12", id: 12},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			id, err := parseTxID(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if id != tc.id {
				t.Errorf("Expected %d, got %d", tc.id, id)
			}
		})
	}
}

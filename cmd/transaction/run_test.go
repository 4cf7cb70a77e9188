package transaction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/hance08/fintrack/internal/app"
	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

// trackerBackend serves the reference lists and an in-memory transaction
// list, recording the last write it received.
type trackerBackend struct {
	mu           sync.Mutex
	transactions []model.Transaction
	lastMethod   string
	lastPath     string
	lastBody     string
}

func (b *trackerBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	writeJSON := func(status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}
	refs := func(names ...string) []model.ReferenceItem {
		items := make([]model.ReferenceItem, len(names))
		for i, n := range names {
			items[i] = model.ReferenceItem{ID: int64(i + 1), Name: n}
		}
		return items
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/users/":
		writeJSON(http.StatusOK, refs("Alice", "Bob"))
	case r.Method == http.MethodGet && r.URL.Path == "/categories/":
		writeJSON(http.StatusOK, refs("Groceries", "Transport"))
	case r.Method == http.MethodGet && r.URL.Path == "/payment-methods/":
		writeJSON(http.StatusOK, refs("Cash", "Debit Card"))
	case r.Method == http.MethodGet && r.URL.Path == "/transactions/":
		writeJSON(http.StatusOK, b.transactions)
	case r.Method == http.MethodGet && r.URL.Path == "/transactions/1" && len(b.transactions) > 0:
		writeJSON(http.StatusOK, b.transactions[0])
	case r.Method == http.MethodPost && r.URL.Path == "/transactions/",
		r.Method == http.MethodPut && r.URL.Path == "/transactions/1":
		body, _ := io.ReadAll(r.Body)
		b.lastMethod, b.lastPath, b.lastBody = r.Method, r.URL.Path, strings.TrimSpace(string(body))

		var draft struct {
			UserID          int64           `json:"user_id"`
			CategoryID      int64           `json:"category_id"`
			PaymentMethodID int64           `json:"payment_method_id"`
			Amount          decimal.Decimal `json:"amount"`
			Note            string          `json:"note"`
		}
		json.Unmarshal(body, &draft)
		names := map[int64][3]string{1: {"Alice", "Groceries", "Cash"}, 2: {"Bob", "Transport", "Debit Card"}}
		note := draft.Note
		tx := model.Transaction{
			ID:            1,
			User:          names[draft.UserID][0],
			Category:      names[draft.CategoryID][1],
			PaymentMethod: names[draft.PaymentMethodID][2],
			Amount:        draft.Amount,
			Note:          &note,
			Timestamp:     "2025-03-01T08:15:00.000000",
		}
		b.transactions = []model.Transaction{tx}
		writeJSON(http.StatusOK, tx)
	default:
		writeJSON(http.StatusNotFound, map[string]string{"detail": "Not Found"})
	}
}

func newTestApp(t *testing.T, backend *trackerBackend, out io.Writer) *app.App {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := config.NewDefault()
	cfg.API.BaseURL = srv.URL
	cfg.Log.Path = filepath.Join(t.TempDir(), "fintrack.log")

	application, closeLog, err := app.NewApp(cfg, out)
	if err != nil {
		t.Fatalf("Failed to build app: %v", err)
	}
	t.Cleanup(closeLog)
	return application
}

func execute(t *testing.T, cmd *cobra.Command, out io.Writer, args ...string) error {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.ExecuteContext(context.Background())
}

func TestAddWithFlags(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantBody string
		wantRow  []string
	}{
		{
			name:     "All fields by name",
			args:     []string{"--user", "Alice", "--category", "Groceries", "--payment-method", "Cash", "--amount", "12.5", "--note", "coffee"},
			wantBody: `{"user_id":1,"category_id":1,"payment_method_id":1,"amount":12.5,"note":"coffee","is_deposit":false}`,
			wantRow:  []string{"Alice", "Groceries", "Cash", "12.50 USD", "coffee"},
		},
		{
			name:     "Ids and short flags",
			args:     []string{"-u", "2", "-g", "2", "-p", "2", "-a", "1234.5"},
			wantBody: `{"user_id":2,"category_id":2,"payment_method_id":2,"amount":1234.5,"note":"","is_deposit":false}`,
			wantRow:  []string{"Bob", "Transport", "Debit Card", "1,234.50 USD"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &trackerBackend{}
			var out bytes.Buffer
			application := newTestApp(t, backend, &out)

			if err := execute(t, NewAddCmd(application), &out, tc.args...); err != nil {
				t.Fatalf("Add failed: %v\n%s", err, out.String())
			}

			if backend.lastMethod != http.MethodPost {
				t.Fatalf("Expected POST, got %q", backend.lastMethod)
			}
			if backend.lastBody != tc.wantBody {
				t.Errorf("Expected body %s, got %s", tc.wantBody, backend.lastBody)
			}
			got := out.String()
			for _, cell := range tc.wantRow {
				if !strings.Contains(got, cell) {
					t.Errorf("Expected output to contain %q:\n%s", cell, got)
				}
			}
			if !strings.Contains(got, "Transaction added!") {
				t.Errorf("Expected success banner:\n%s", got)
			}
		})
	}
}

func TestAddNoteOnlyUsesFlagMode(t *testing.T) {
	backend := &trackerBackend{}
	var out bytes.Buffer
	application := newTestApp(t, backend, &out)

	// --note alone skips the interactive form, so the empty draft is rejected
	err := execute(t, NewAddCmd(application), &out, "--note", "coffee")
	if err == nil {
		t.Fatal("Expected an error for a draft without amount")
	}
	if backend.lastMethod != "" {
		t.Errorf("Expected no write, got %s %s", backend.lastMethod, backend.lastPath)
	}
	if !strings.Contains(out.String(), "Invalid input") {
		t.Errorf("Expected invalid input banner:\n%s", out.String())
	}
}

func TestEditWithFlagsKeepsOtherFields(t *testing.T) {
	note := "coffee"
	backend := &trackerBackend{transactions: []model.Transaction{{
		ID:            1,
		User:          "Alice",
		Category:      "Groceries",
		PaymentMethod: "Cash",
		Amount:        decimal.RequireFromString("12.5"),
		Note:          &note,
		Timestamp:     "2025-03-01T08:15:00.000000",
	}}}
	var out bytes.Buffer
	application := newTestApp(t, backend, &out)

	if err := execute(t, NewEditCmd(application), &out, "1", "--amount", "20", "--category", "Transport"); err != nil {
		t.Fatalf("Edit failed: %v\n%s", err, out.String())
	}

	if backend.lastMethod != http.MethodPut || backend.lastPath != "/transactions/1" {
		t.Fatalf("Expected PUT /transactions/1, got %s %s", backend.lastMethod, backend.lastPath)
	}
	want := `{"user_id":1,"category_id":2,"payment_method_id":1,"amount":20,"note":"coffee","is_deposit":false}`
	if backend.lastBody != want {
		t.Errorf("Expected body %s, got %s", want, backend.lastBody)
	}
	got := out.String()
	for _, s := range []string{"Editing Transaction #1", "Transaction updated!", "Transport", "20.00 USD"} {
		if !strings.Contains(got, s) {
			t.Errorf("Expected output to contain %q:\n%s", s, got)
		}
	}
}

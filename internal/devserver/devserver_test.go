package devserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hance08/fintrack/internal/api"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "dev.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := Seed(repo); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	h := NewHandler(repo, quietLogger())
	h.now = func() time.Time { return time.Date(2025, 3, 1, 8, 15, 0, 0, time.UTC) }

	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(func() {
		srv.Close()
		repo.Close()
	})
	return srv, repo
}

func TestSeedIsIdempotent(t *testing.T) {
	_, repo := newTestServer(t)

	if err := Seed(repo); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	count, _ := repo.CountReferences(store.KindCategory)
	if count != len(demoReferences[store.KindCategory]) {
		t.Errorf("Expected %d categories, got %d", len(demoReferences[store.KindCategory]), count)
	}
}

func TestReferenceRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	client := api.NewClient(srv.URL, nil, quietLogger())
	ctx := context.Background()

	testCases := []struct {
		name  string
		fetch func(context.Context) ([]model.ReferenceItem, error)
		want  []string
	}{
		{name: "Users", fetch: client.ListUsers, want: demoReferences[store.KindUser]},
		{name: "Categories", fetch: client.ListCategories, want: demoReferences[store.KindCategory]},
		{name: "Payment methods", fetch: client.ListPaymentMethods, want: demoReferences[store.KindPaymentMethod]},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := tc.fetch(ctx)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(items) != len(tc.want) {
				t.Fatalf("Expected %d items, got %d", len(tc.want), len(items))
			}
			for i, name := range tc.want {
				if items[i].Name != name {
					t.Errorf("Item %d: expected %s, got %s", i, name, items[i].Name)
				}
			}
		})
	}
}

func TestCreateAndListTransactions(t *testing.T) {
	srv, _ := newTestServer(t)
	client := api.NewClient(srv.URL, nil, quietLogger())
	ctx := context.Background()

	err := client.CreateTransaction(ctx, model.TransactionDraft{
		UserID: 1, CategoryID: 2, PaymentMethodID: 3,
		Amount: decimal.RequireFromString("12.5"), Note: "coffee",
	})
	if err != nil {
		t.Fatalf("Failed to create: %v", err)
	}

	txs, err := client.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(txs))
	}

	tx := txs[0]
	if tx.User != "Alice" || tx.Category != "Transport" || tx.PaymentMethod != "Credit Card" {
		t.Errorf("Unexpected names: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("12.5")) || tx.NoteText() != "coffee" {
		t.Errorf("Unexpected values: %+v", tx)
	}
	if tx.Timestamp != "2025-03-01T08:15:00.000000" {
		t.Errorf("Unexpected timestamp %q", tx.Timestamp)
	}
}

func TestCreateTransactionUnknownReference(t *testing.T) {
	srv, _ := newTestServer(t)
	client := api.NewClient(srv.URL, nil, quietLogger())

	err := client.CreateTransaction(context.Background(), model.TransactionDraft{
		UserID: 99, CategoryID: 1, PaymentMethodID: 1, Amount: decimal.NewFromInt(1),
	})
	if api.StatusCode(err) != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422, got %v", err)
	}
}

func TestTransactionByID(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"user_id":1,"category_id":1,"payment_method_id":1,"amount":3,"note":"","is_deposit":false}`
	resp, err := http.Post(srv.URL+"/transactions/", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	var created model.Transaction
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()

	if created.Note != nil {
		t.Errorf("Empty note should be stored as null, got %q", *created.Note)
	}

	testCases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{name: "Get existing", method: http.MethodGet, path: "/transactions/1", status: http.StatusOK},
		{name: "Get missing", method: http.MethodGet, path: "/transactions/42", status: http.StatusNotFound},
		{name: "Bad id", method: http.MethodGet, path: "/transactions/abc", status: http.StatusUnprocessableEntity},
		{name: "Delete existing", method: http.MethodDelete, path: "/transactions/1", status: http.StatusOK},
		{name: "Delete again", method: http.MethodDelete, path: "/transactions/1", status: http.StatusNotFound},
		{name: "Bad paging", method: http.MethodGet, path: "/transactions/?limit=-1", status: http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("Expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/transactions/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()

	if resp.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS allow origin header")
	}
}

func TestCreateReference(t *testing.T) {
	srv, _ := newTestServer(t)

	testCases := []struct {
		name   string
		body   string
		status int
	}{
		{name: "New category", body: `{"name":"Books"}`, status: http.StatusOK},
		{name: "Duplicate", body: `{"name":"Books"}`, status: http.StatusConflict},
		{name: "Empty name", body: `{"name":"  "}`, status: http.StatusUnprocessableEntity},
		{name: "Malformed", body: `{`, status: http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/categories/", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("Post failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Errorf("Expected %d, got %d", tc.status, resp.StatusCode)
			}
		})
	}
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()

	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestAmountIsBareNumber(t *testing.T) {
	srv, _ := newTestServer(t)

	status, body := do(t, http.MethodPost, srv.URL+"/transactions/",
		`{"user_id":1,"category_id":1,"payment_method_id":1,"amount":12.5,"note":"coffee","is_deposit":false}`)
	if status != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", status, body)
	}

	for _, path := range []string{"/transactions/", "/transactions/1"} {
		_, body := do(t, http.MethodGet, srv.URL+path, "")
		if !strings.Contains(body, `"amount":12.5`) {
			t.Errorf("%s: expected bare amount, got %s", path, body)
		}
	}
}

func TestUpdateTransactionRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	client := api.NewClient(srv.URL, nil, quietLogger())
	ctx := context.Background()

	if err := client.CreateTransaction(ctx, model.TransactionDraft{
		UserID: 1, CategoryID: 1, PaymentMethodID: 1,
		Amount: decimal.NewFromInt(5), Note: "lunch",
	}); err != nil {
		t.Fatalf("Failed to create: %v", err)
	}

	err := client.UpdateTransaction(ctx, 1, model.TransactionDraft{
		UserID: 2, CategoryID: 3, PaymentMethodID: 2,
		Amount: decimal.RequireFromString("6.75"), Note: "dinner",
	})
	if err != nil {
		t.Fatalf("Failed to update: %v", err)
	}

	tx, err := client.GetTransaction(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if tx.User != "Bob" || tx.Category != "Dining" || tx.PaymentMethod != "Debit Card" {
		t.Errorf("Unexpected names after update: %+v", tx)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("6.75")) || tx.NoteText() != "dinner" {
		t.Errorf("Unexpected values after update: %+v", tx)
	}
	if tx.Timestamp != "2025-03-01T08:15:00.000000" {
		t.Errorf("Timestamp should be kept, got %s", tx.Timestamp)
	}

	testCases := []struct {
		name   string
		id     int64
		draft  model.TransactionDraft
		status int
	}{
		{name: "Missing", id: 9, draft: model.TransactionDraft{UserID: 1, CategoryID: 1, PaymentMethodID: 1, Amount: decimal.NewFromInt(1)}, status: http.StatusNotFound},
		{name: "Unknown user", id: 1, draft: model.TransactionDraft{UserID: 99, CategoryID: 1, PaymentMethodID: 1, Amount: decimal.NewFromInt(1)}, status: http.StatusUnprocessableEntity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := client.UpdateTransaction(ctx, tc.id, tc.draft)
			if api.StatusCode(err) != tc.status {
				t.Errorf("Expected %d, got %v", tc.status, err)
			}
		})
	}
}

func TestReferenceByIDRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	status, _ := do(t, http.MethodPost, srv.URL+"/transactions/",
		`{"user_id":1,"category_id":1,"payment_method_id":1,"amount":1,"note":"","is_deposit":false}`)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 creating transaction, got %d", status)
	}

	testCases := []struct {
		name     string
		method   string
		path     string
		body     string
		status   int
		contains string
	}{
		{name: "Get user", method: http.MethodGet, path: "/users/2", status: http.StatusOK, contains: `"name":"Bob"`},
		{name: "Get missing category", method: http.MethodGet, path: "/categories/99", status: http.StatusNotFound, contains: "Category not found"},
		{name: "Rename payment method", method: http.MethodPut, path: "/payment-methods/1", body: `{"name":"Coins"}`, status: http.StatusOK, contains: `"name":"Coins"`},
		{name: "Rename to taken name", method: http.MethodPut, path: "/payment-methods/2", body: `{"name":"Coins"}`, status: http.StatusConflict},
		{name: "Rename missing user", method: http.MethodPut, path: "/users/99", body: `{"name":"Zed"}`, status: http.StatusNotFound, contains: "User not found"},
		{name: "Delete user in use", method: http.MethodDelete, path: "/users/1", status: http.StatusConflict},
		{name: "Delete unused user", method: http.MethodDelete, path: "/users/2", status: http.StatusOK, contains: `"ok":true`},
		{name: "Delete again", method: http.MethodDelete, path: "/users/2", status: http.StatusNotFound},
		{name: "Missing payment method", method: http.MethodDelete, path: "/payment-methods/99", status: http.StatusNotFound, contains: "Payment method not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, tc.method, srv.URL+tc.path, tc.body)
			if status != tc.status {
				t.Errorf("Expected %d, got %d: %s", tc.status, status, body)
			}
			if tc.contains != "" && !strings.Contains(body, tc.contains) {
				t.Errorf("Expected body to contain %s, got %s", tc.contains, body)
			}
		})
	}
}

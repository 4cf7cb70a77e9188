package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/hance08/fintrack/internal/api"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/sirupsen/logrus"
)

type fakeBackend struct {
	mu sync.Mutex

	users, categories, methods []model.ReferenceItem
	transactions               []model.Transaction

	refErr    error
	listErr   error
	createErr error
	updateErr error

	created []model.TransactionDraft
	updated map[int64]model.TransactionDraft
	events  *[]string
	onList  func()
}

func (f *fakeBackend) ListUsers(ctx context.Context) ([]model.ReferenceItem, error) {
	return f.users, f.refErr
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]model.ReferenceItem, error) {
	return f.categories, nil
}

func (f *fakeBackend) ListPaymentMethods(ctx context.Context) ([]model.ReferenceItem, error) {
	return f.methods, nil
}

func (f *fakeBackend) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	f.record("list")
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Transaction(nil), f.transactions...), nil
}

func (f *fakeBackend) CreateTransaction(ctx context.Context, draft model.TransactionDraft) error {
	f.record("create")
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	f.created = append(f.created, draft)
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) UpdateTransaction(ctx context.Context, id int64, draft model.TransactionDraft) error {
	f.record("update")
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	if f.updated == nil {
		f.updated = map[int64]model.TransactionDraft{}
	}
	f.updated[id] = draft
	f.mu.Unlock()
	return nil
}

func (f *fakeBackend) record(ev string) {
	if f.events == nil {
		return
	}
	f.mu.Lock()
	*f.events = append(*f.events, ev)
	f.mu.Unlock()
}

type recordingNotifier struct {
	banners []page.Banner
	events  *[]string
}

func (n *recordingNotifier) Show(message, level string) page.Banner {
	b := page.Banner{ID: len(n.banners) + 1, Message: message, Level: level}
	n.banners = append(n.banners, b)
	if n.events != nil {
		*n.events = append(*n.events, "notify:"+level)
	}
	return b
}

func (n *recordingNotifier) levels() []string {
	var out []string
	for _, b := range n.banners {
		out = append(out, b.Level)
	}
	return out
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

type fixture struct {
	page     *page.Page
	form     *page.Form
	body     *page.TableBody
	backend  *fakeBackend
	notifier *recordingNotifier
	renderer *Renderer
	binder   *Binder
	seq      *Sequencer
	events   []string
}

func newFixture(backend *fakeBackend) *fixture {
	fx := &fixture{backend: backend}
	backend.events = &fx.events

	fx.page = page.New("")
	fx.form, _ = fx.page.Form("transaction-form")
	fx.body, _ = fx.page.TableBody("transactions-body")
	fx.notifier = &recordingNotifier{events: &fx.events}

	fx.renderer = NewRenderer(backend, fx.notifier, quietLogger(), Targets{
		Users:          fx.form.User,
		Categories:     fx.form.Category,
		PaymentMethods: fx.form.PaymentMethod,
		Transactions:   fx.body,
	}, "USD", time.UTC)
	fx.binder = NewBinder(backend, fx.notifier, quietLogger(), fx.form, fx.renderer.LoadTransactions)
	fx.seq = NewSequencer(fx.renderer, fx.binder, fx.form)
	return fx
}

func strPtr(s string) *string { return &s }

var errServer = &api.HTTPError{StatusCode: 500, Method: "GET", Path: "/transactions/"}

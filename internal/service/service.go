package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/fintrack/internal/config"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/sirupsen/logrus"
)

// Backend is the REST API the front-end synchronises with.
type Backend interface {
	ListUsers(ctx context.Context) ([]model.ReferenceItem, error)
	ListCategories(ctx context.Context) ([]model.ReferenceItem, error)
	ListPaymentMethods(ctx context.Context) ([]model.ReferenceItem, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	CreateTransaction(ctx context.Context, draft model.TransactionDraft) error
	UpdateTransaction(ctx context.Context, id int64, draft model.TransactionDraft) error
}

type Notifier interface {
	Show(message, level string) page.Banner
}

type Service struct {
	Renderer  *Renderer
	Binder    *Binder
	Sequencer *Sequencer
}

// NewService resolves the page's render targets once and hands them to each
// component explicitly.
func NewService(backend Backend, p *page.Page, notifier Notifier, cfg *config.Config, log logrus.FieldLogger) (*Service, error) {
	form, err := p.Form(constants.ElemTransactionForm)
	if err != nil {
		return nil, err
	}

	target := cfg.Display.TransactionsTarget
	if target == "" {
		target = constants.ElemTransactionsBody
	}
	body, err := p.TableBody(target)
	if err != nil {
		return nil, fmt.Errorf("transactions display surface: %w", err)
	}

	renderer := NewRenderer(backend, notifier, log, Targets{
		Users:          form.User,
		Categories:     form.Category,
		PaymentMethods: form.PaymentMethod,
		Transactions:   body,
	}, cfg.Display.Currency, time.Local)

	binder := NewBinder(backend, notifier, log, form, renderer.LoadTransactions)

	return &Service{
		Renderer:  renderer,
		Binder:    binder,
		Sequencer: NewSequencer(renderer, binder, form),
	}, nil
}

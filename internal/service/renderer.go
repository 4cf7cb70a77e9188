package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Targets are the elements the renderer writes into.
type Targets struct {
	Users          *page.Select
	Categories     *page.Select
	PaymentMethods *page.Select
	Transactions   *page.TableBody
}

type Renderer struct {
	backend  Backend
	notifier Notifier
	log      logrus.FieldLogger
	targets  Targets
	currency string
	loc      *time.Location
}

func NewRenderer(backend Backend, notifier Notifier, log logrus.FieldLogger, targets Targets, currency string, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{
		backend:  backend,
		notifier: notifier,
		log:      log,
		targets:  targets,
		currency: currency,
		loc:      loc,
	}
}

// PopulateDropdowns appends one option per reference item to each selector.
// It only appends; running it twice duplicates the options.
func (r *Renderer) PopulateDropdowns(ctx context.Context) error {
	var users, categories, methods []model.ReferenceItem

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = r.backend.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = r.backend.ListCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		methods, err = r.backend.ListPaymentMethods(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		r.log.WithError(err).Error("failed to populate dropdowns")
		r.notifier.Show("Failed to load form options", constants.LevelDanger)
		return fmt.Errorf("populate dropdowns: %w", err)
	}

	appendOptions(r.targets.Users, users)
	appendOptions(r.targets.Categories, categories)
	appendOptions(r.targets.PaymentMethods, methods)

	r.log.WithFields(logrus.Fields{
		"users":           len(users),
		"categories":      len(categories),
		"payment_methods": len(methods),
	}).Debug("dropdowns populated")

	return nil
}

func appendOptions(sel *page.Select, items []model.ReferenceItem) {
	for _, item := range items {
		sel.Append(page.Option{Label: item.Name, Value: strconv.FormatInt(item.ID, 10)})
	}
}

// LoadTransactions fetches the transaction list and replaces every row of the
// display surface. A failed fetch leaves the previous rows in place.
func (r *Renderer) LoadTransactions(ctx context.Context) error {
	txs, err := r.backend.ListTransactions(ctx)
	if err != nil {
		r.log.WithError(err).Error("failed to load transactions")
		r.notifier.Show("Failed to load transactions", constants.LevelDanger)
		return fmt.Errorf("load transactions: %w", err)
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, r.row(tx))
	}
	r.targets.Transactions.Replace(rows)

	r.log.WithField("rows", len(rows)).Debug("transactions rendered")
	return nil
}

func (r *Renderer) row(tx model.Transaction) []string {
	return []string{
		strconv.FormatInt(tx.ID, 10),
		tx.User,
		tx.Category,
		tx.PaymentMethod,
		utils.FormatCurrency(tx.Amount, r.currency),
		tx.NoteText(),
		utils.FormatLocalTimestamp(tx.Timestamp, r.loc),
	}
}

// Targets exposes the bound elements for views.
func (r *Renderer) Targets() Targets {
	return r.targets
}

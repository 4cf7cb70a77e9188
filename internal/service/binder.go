package service

import (
	"context"
	"fmt"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/validation"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

type Binder struct {
	backend  Backend
	notifier Notifier
	log      logrus.FieldLogger
	form     *page.Form
	refresh  func(ctx context.Context) error
}

func NewBinder(backend Backend, notifier Notifier, log logrus.FieldLogger, form *page.Form, refresh func(ctx context.Context) error) *Binder {
	return &Binder{
		backend:  backend,
		notifier: notifier,
		log:      log,
		form:     form,
		refresh:  refresh,
	}
}

// ReadDraft reads and parses the five form fields. Every field that fails to
// parse is reported, not just the first.
func (b *Binder) ReadDraft() (model.TransactionDraft, error) {
	var errs *multierror.Error
	var draft model.TransactionDraft
	var err error

	if draft.UserID, err = validation.ParseID(constants.ElemUser, b.form.User.Value()); err != nil {
		errs = multierror.Append(errs, err)
	}
	if draft.CategoryID, err = validation.ParseID(constants.ElemCategory, b.form.Category.Value()); err != nil {
		errs = multierror.Append(errs, err)
	}
	if draft.PaymentMethodID, err = validation.ParseID(constants.ElemPaymentMethod, b.form.PaymentMethod.Value()); err != nil {
		errs = multierror.Append(errs, err)
	}
	if draft.Amount, err = validation.ParseAmount(constants.ElemAmount, b.form.Amount.Value()); err != nil {
		errs = multierror.Append(errs, err)
	}

	draft.Note = b.form.Note.Value()
	if err := validation.ValidateNote(constants.ElemNote, draft.Note); err != nil {
		errs = multierror.Append(errs, err)
	}

	// this client only records expenditures
	draft.IsDeposit = false

	if err := errs.ErrorOrNil(); err != nil {
		return model.TransactionDraft{}, err
	}
	return draft, nil
}

type binderAction struct {
	name    string
	failure string
	success string
}

var (
	actionAdd    = binderAction{name: "create", failure: "Failed to add transaction", success: "Transaction added!"}
	actionUpdate = binderAction{name: "update", failure: "Failed to update transaction", success: "Transaction updated!"}
)

// Submit sends the form as a new transaction. On success the form is reset,
// the list refreshed and a success banner shown, in that order. On failure
// the fields are left as entered.
func (b *Binder) Submit(ctx context.Context) error {
	return b.send(ctx, actionAdd, false, b.backend.CreateTransaction)
}

// Update sends the form as the new content of transaction id, following the
// same order as Submit. isDeposit is carried over from the stored record.
func (b *Binder) Update(ctx context.Context, id int64, isDeposit bool) error {
	return b.send(ctx, actionUpdate, isDeposit, func(ctx context.Context, draft model.TransactionDraft) error {
		return b.backend.UpdateTransaction(ctx, id, draft)
	})
}

func (b *Binder) send(ctx context.Context, action binderAction, isDeposit bool, call func(context.Context, model.TransactionDraft) error) error {
	draft, err := b.ReadDraft()
	if err != nil {
		b.log.WithError(err).Warn("rejected invalid transaction input")
		b.notifier.Show(fmt.Sprintf("Invalid input: %s", flatten(err)), constants.LevelDanger)
		return err
	}
	draft.IsDeposit = isDeposit

	if err := call(ctx, draft); err != nil {
		b.log.WithError(err).WithFields(logrus.Fields{
			"action":            action.name,
			"user_id":           draft.UserID,
			"category_id":       draft.CategoryID,
			"payment_method_id": draft.PaymentMethodID,
		}).Error("failed to send transaction")
		b.notifier.Show(action.failure, constants.LevelDanger)
		return fmt.Errorf("%s transaction: %w", action.name, err)
	}

	b.form.Reset()

	// a failed refresh has already raised its own banner
	if b.refresh != nil {
		_ = b.refresh(ctx)
	}

	b.notifier.Show(action.success, constants.LevelSuccess)
	return nil
}

func flatten(err error) string {
	merr, ok := err.(*multierror.Error)
	if !ok {
		return err.Error()
	}

	text := ""
	for i, e := range merr.Errors {
		if i > 0 {
			text += "; "
		}
		text += e.Error()
	}
	return text
}

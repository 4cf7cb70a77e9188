package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/store"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit   = 100
	timestampStyle = "2006-01-02T15:04:05.000000"
)

func (h *Handler) listReferences(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, ok := paging(w, r)
		if !ok {
			return
		}

		rows, err := h.repo.ListReferences(kind, skip, limit)
		if err != nil {
			h.log.WithError(err).WithField("kind", kind).Error("failed to list references")
			writeError(w, http.StatusInternalServerError, "failed to list "+string(kind))
			return
		}

		items := make([]model.ReferenceItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, model.ReferenceItem{ID: row.ID, Name: row.Name})
		}
		writeJSON(w, http.StatusOK, items)
	}
}

var notFoundDetail = map[store.Kind]string{
	store.KindUser:          "User not found",
	store.KindCategory:      "Category not found",
	store.KindPaymentMethod: "Payment method not found",
}

func (h *Handler) createReference(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := decodeName(w, r)
		if !ok {
			return
		}

		id, err := h.repo.CreateReference(kind, name)
		if err != nil {
			h.referenceError(w, kind, err, "create")
			return
		}

		writeJSON(w, http.StatusOK, model.ReferenceItem{ID: id, Name: name})
	}
}

func (h *Handler) getReference(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		row, err := h.repo.GetReference(kind, id)
		if err != nil {
			h.referenceError(w, kind, err, "get")
			return
		}
		writeJSON(w, http.StatusOK, model.ReferenceItem{ID: row.ID, Name: row.Name})
	}
}

func (h *Handler) updateReference(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}
		name, ok := decodeName(w, r)
		if !ok {
			return
		}

		if err := h.repo.UpdateReference(kind, id, name); err != nil {
			h.referenceError(w, kind, err, "update")
			return
		}
		writeJSON(w, http.StatusOK, model.ReferenceItem{ID: id, Name: name})
	}
}

func (h *Handler) deleteReference(kind store.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := h.repo.DeleteReference(kind, id); err != nil {
			h.referenceError(w, kind, err, "delete")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

func (h *Handler) referenceError(w http.ResponseWriter, kind store.Kind, err error, op string) {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, notFoundDetail[kind])
	case errors.Is(err, store.ErrConstraintViolation):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.WithError(err).WithField("kind", kind).Errorf("failed to %s reference", op)
		writeError(w, http.StatusInternalServerError, "failed to "+op+" "+string(kind))
	}
}

func decodeName(w http.ResponseWriter, r *http.Request) (string, bool) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request payload")
		return "", false
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		writeError(w, http.StatusUnprocessableEntity, "name is required")
		return "", false
	}
	return name, true
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	skip, limit, ok := paging(w, r)
	if !ok {
		return
	}

	rows, err := h.repo.ListTransactions(skip, limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list transactions")
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	txs := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		tx, err := toTransaction(row)
		if err != nil {
			h.log.WithError(err).WithField("id", row.ID).Error("corrupt stored amount")
			writeError(w, http.StatusInternalServerError, "failed to list transactions")
			return
		}
		txs = append(txs, tx)
	}
	writeJSON(w, http.StatusOK, txs)
}

// draftPayload mirrors model.TransactionDraft's wire form.
type draftPayload struct {
	UserID          int64            `json:"user_id"`
	CategoryID      int64            `json:"category_id"`
	PaymentMethodID int64            `json:"payment_method_id"`
	Amount          *decimal.Decimal `json:"amount"`
	Note            string           `json:"note"`
	IsDeposit       bool             `json:"is_deposit"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	id, err := h.repo.CreateTransaction(payload.toStore(h.now().UTC().Format(timestampStyle)))
	if err != nil {
		h.transactionError(w, err, "create")
		return
	}

	h.writeTransaction(w, id)
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	payload, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	if err := h.repo.UpdateTransaction(id, payload.toStore("")); err != nil {
		h.transactionError(w, err, "update")
		return
	}

	h.writeTransaction(w, id)
}

func (h *Handler) transactionError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, store.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, store.ErrConstraintViolation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.WithError(err).Errorf("failed to %s transaction", op)
		writeError(w, http.StatusInternalServerError, "failed to "+op+" transaction")
	}
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (draftPayload, bool) {
	var payload draftPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request payload")
		return payload, false
	}
	if payload.Amount == nil {
		writeError(w, http.StatusUnprocessableEntity, "amount is required")
		return payload, false
	}
	return payload, true
}

func (p draftPayload) toStore(timestamp string) store.NewTransaction {
	return store.NewTransaction{
		UserID:          p.UserID,
		CategoryID:      p.CategoryID,
		PaymentMethodID: p.PaymentMethodID,
		Amount:          p.Amount.String(),
		Note:            p.Note,
		Timestamp:       timestamp,
		IsDeposit:       p.IsDeposit,
	}
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	h.writeTransaction(w, id)
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteTransaction(id); err != nil {
		h.transactionError(w, err, "delete")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) writeTransaction(w http.ResponseWriter, id int64) {
	row, err := h.repo.GetTransactionByID(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		h.log.WithError(err).WithField("id", id).Error("failed to get transaction")
		writeError(w, http.StatusInternalServerError, "failed to get transaction")
		return
	}

	tx, err := toTransaction(row)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get transaction")
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func toTransaction(row *store.TransactionRow) (model.Transaction, error) {
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		ID:            row.ID,
		User:          row.User,
		Category:      row.Category,
		PaymentMethod: row.PaymentMethod,
		Amount:        amount,
		Note:          row.Note,
		Timestamp:     row.Timestamp,
		IsDeposit:     row.IsDeposit,
	}, nil
}

func paging(w http.ResponseWriter, r *http.Request) (skip, limit int, ok bool) {
	skip, limit = 0, defaultLimit
	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusUnprocessableEntity, "skip must be a non-negative integer")
			return 0, 0, false
		}
		skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusUnprocessableEntity, "limit must be a non-negative integer")
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusUnprocessableEntity, "Invalid ID")
		return 0, false
	}
	return id, true
}

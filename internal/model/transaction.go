package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID            int64           `json:"id"`
	User          string          `json:"user"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Note          *string         `json:"note"`
	Timestamp     string          `json:"timestamp"`
	IsDeposit     bool            `json:"is_deposit"`
}

// NoteText returns the note, or "" when the backend sent none.
func (t Transaction) NoteText() string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}

// MarshalJSON writes the amount as a bare number like the tracker backend does.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            int64       `json:"id"`
		User          string      `json:"user"`
		Category      string      `json:"category"`
		PaymentMethod string      `json:"payment_method"`
		Amount        json.Number `json:"amount"`
		Note          *string     `json:"note"`
		Timestamp     string      `json:"timestamp"`
		IsDeposit     bool        `json:"is_deposit"`
	}{
		ID:            t.ID,
		User:          t.User,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		Amount:        json.Number(t.Amount.String()),
		Note:          t.Note,
		Timestamp:     t.Timestamp,
		IsDeposit:     t.IsDeposit,
	})
}

// TransactionDraft is the payload posted to create a transaction.
type TransactionDraft struct {
	UserID          int64
	CategoryID      int64
	PaymentMethodID int64
	Amount          decimal.Decimal
	Note            string
	IsDeposit       bool
}

// MarshalJSON writes the amount as a bare number; decimal quotes it by default.
func (d TransactionDraft) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UserID          int64       `json:"user_id"`
		CategoryID      int64       `json:"category_id"`
		PaymentMethodID int64       `json:"payment_method_id"`
		Amount          json.Number `json:"amount"`
		Note            string      `json:"note"`
		IsDeposit       bool        `json:"is_deposit"`
	}{
		UserID:          d.UserID,
		CategoryID:      d.CategoryID,
		PaymentMethodID: d.PaymentMethodID,
		Amount:          json.Number(d.Amount.String()),
		Note:            d.Note,
		IsDeposit:       d.IsDeposit,
	})
}

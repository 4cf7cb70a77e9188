package store

// Kind names a reference table.
type Kind string

const (
	KindUser          Kind = "users"
	KindCategory      Kind = "categories"
	KindPaymentMethod Kind = "payment_methods"
)

func (k Kind) valid() bool {
	switch k {
	case KindUser, KindCategory, KindPaymentMethod:
		return true
	}
	return false
}

// TransactionRow is a stored transaction with its references already resolved to names.
type TransactionRow struct {
	ID              int64
	UserID          int64
	User            string
	CategoryID      int64
	Category        string
	PaymentMethodID int64
	PaymentMethod   string
	Amount          string
	Note            *string
	Timestamp       string
	IsDeposit       bool
}

type NewTransaction struct {
	UserID          int64
	CategoryID      int64
	PaymentMethodID int64
	Amount          string
	Note            string
	Timestamp       string
	IsDeposit       bool
}

package store

type Repository interface {
	// Reference Operations
	CreateReference(kind Kind, name string) (int64, error)
	ListReferences(kind Kind, skip, limit int) ([]ReferenceRow, error)
	CountReferences(kind Kind) (int, error)
	GetReference(kind Kind, id int64) (*ReferenceRow, error)
	UpdateReference(kind Kind, id int64, name string) error
	DeleteReference(kind Kind, id int64) error

	// Transaction Operations
	CreateTransaction(tx NewTransaction) (int64, error)
	GetTransactionByID(id int64) (*TransactionRow, error)
	ListTransactions(skip, limit int) ([]*TransactionRow, error)
	UpdateTransaction(id int64, tx NewTransaction) error
	DeleteTransaction(id int64) error

	Close() error
}

type ReferenceRow struct {
	ID   int64
	Name string
}

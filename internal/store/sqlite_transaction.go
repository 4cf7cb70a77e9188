package store

import (
	"database/sql"
	"errors"
	"fmt"
)

const selectTransaction = `
	SELECT t.id, t.user_id, u.name, t.category_id, c.name,
	       t.payment_method_id, p.name, t.amount, t.note, t.timestamp, t.is_deposit
	FROM transactions t
	JOIN users u ON u.id = t.user_id
	JOIN categories c ON c.id = t.category_id
	JOIN payment_methods p ON p.id = t.payment_method_id
`

func (s *Store) CreateTransaction(tx NewTransaction) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO transactions (user_id, category_id, payment_method_id, amount, note, timestamp, is_deposit)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer stmt.Close()

	var note sql.NullString
	if tx.Note != "" {
		note = sql.NullString{String: tx.Note, Valid: true}
	}

	var newID int64
	err = stmt.QueryRow(
		tx.UserID, tx.CategoryID, tx.PaymentMethodID,
		tx.Amount, note, tx.Timestamp, tx.IsDeposit,
	).Scan(&newID)
	if err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("%w: unknown user, category or payment method", ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert transaction : %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionByID(id int64) (*TransactionRow, error) {
	row := s.db.QueryRow(selectTransaction+" WHERE t.id = ?", id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction with ID %d: %w", id, err)
	}
	return tx, nil
}

func (s *Store) ListTransactions(skip, limit int) ([]*TransactionRow, error) {
	rows, err := s.db.Query(selectTransaction+" ORDER BY t.id LIMIT ? OFFSET ?", limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := []*TransactionRow{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// UpdateTransaction replaces every field of transaction id except its timestamp.
func (s *Store) UpdateTransaction(id int64, tx NewTransaction) error {
	var note sql.NullString
	if tx.Note != "" {
		note = sql.NullString{String: tx.Note, Valid: true}
	}

	result, err := s.db.Exec(`
		UPDATE transactions
		SET user_id = ?, category_id = ?, payment_method_id = ?, amount = ?, note = ?, is_deposit = ?
		WHERE id = ?
	`, tx.UserID, tx.CategoryID, tx.PaymentMethodID, tx.Amount, note, tx.IsDeposit, id)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: unknown user, category or payment method", ErrConstraintViolation)
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireAffected(result, "transaction", id)
}

func (s *Store) DeleteTransaction(id int64) error {
	result, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireAffected(result, "transaction", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(sc scanner) (*TransactionRow, error) {
	tx := &TransactionRow{}
	var note sql.NullString

	err := sc.Scan(
		&tx.ID, &tx.UserID, &tx.User, &tx.CategoryID, &tx.Category,
		&tx.PaymentMethodID, &tx.PaymentMethod, &tx.Amount, &note,
		&tx.Timestamp, &tx.IsDeposit,
	)
	if err != nil {
		return nil, err
	}

	if note.Valid {
		tx.Note = &note.String
	}
	return tx, nil
}

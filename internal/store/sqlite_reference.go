package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) CreateReference(kind Kind, name string) (int64, error) {
	if !kind.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	// kind is whitelisted above, so the table name is safe to interpolate
	stmt, err := s.db.Prepare(fmt.Sprintf(`
		INSERT INTO %s (name)
		VALUES (?)
		RETURNING id;
	`, kind))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64
	if err := stmt.QueryRow(name).Scan(&newID); err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("%w: %s '%s' already exists", ErrDuplicateName, kind, name)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) ListReferences(kind Kind, skip, limit int) ([]ReferenceRow, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT id, name
		FROM %s
		ORDER BY id
		LIMIT ? OFFSET ?
	`, kind), limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer rows.Close()

	items := []ReferenceRow{}
	for rows.Next() {
		var item ReferenceRow
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *Store) CountReferences(kind Kind) (int, error) {
	if !kind.valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	var count int
	if err := s.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", kind)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return count, nil
}

func (s *Store) GetReference(kind Kind, id int64) (*ReferenceRow, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	item := &ReferenceRow{}
	err := s.db.QueryRow(fmt.Sprintf("SELECT id, name FROM %s WHERE id = ?", kind), id).Scan(&item.ID, &item.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s with ID %d: %w", kind, id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query %s with ID %d: %w", kind, id, err)
	}
	return item, nil
}

func (s *Store) UpdateReference(kind Kind, id int64, name string) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	result, err := s.db.Exec(fmt.Sprintf("UPDATE %s SET name = ? WHERE id = ?", kind), name, id)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: %s '%s' already exists", ErrDuplicateName, kind, name)
		}
		return fmt.Errorf("failed to update %s: %w", kind, err)
	}
	return requireAffected(result, kind, id)
}

// DeleteReference removes a reference row. Rows still used by a transaction
// fail with ErrConstraintViolation.
func (s *Store) DeleteReference(kind Kind, id int64) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	result, err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", kind), id)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: %s %d is used by transactions", ErrConstraintViolation, kind, id)
		}
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return requireAffected(result, kind, id)
}

func requireAffected(result sql.Result, what any, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%v with ID %d: %w", what, id, ErrRecordNotFound)
	}
	return nil
}

package store

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	// ErrDuplicateName is returned when a reference name is already taken.
	// It wraps ErrConstraintViolation.
	ErrDuplicateName = fmt.Errorf("%w: duplicate name", ErrConstraintViolation)
	ErrUnknownKind   = errors.New("unknown reference kind")
)

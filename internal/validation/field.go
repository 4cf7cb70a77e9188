package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/shopspring/decimal"
)

var (
	ErrEmpty    = errors.New("value is required")
	ErrNotInt   = errors.New("must be a whole number")
	ErrNotDec   = errors.New("must be a decimal number")
	ErrTooLong  = errors.New("too long")
	ErrNotFound = errors.New("not one of the available options")
)

// FieldError reports which form field failed to parse and why.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %q %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ParseID parses a selector value into a reference id.
func ParseID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Err: ErrEmpty}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Err: ErrNotInt}
	}
	return id, nil
}

// ParseAmount parses the amount input. Thousands separators are not accepted.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &FieldError{Field: field, Err: ErrEmpty}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Value: raw, Err: ErrNotDec}
	}
	return amount, nil
}

// ValidateNote accepts any note up to MaxNoteLen characters, empty included.
func ValidateNote(field, raw string) error {
	if len([]rune(raw)) > constants.MaxNoteLen {
		return &FieldError{Field: field, Err: fmt.Errorf("%w (max %d characters)", ErrTooLong, constants.MaxNoteLen)}
	}
	return nil
}

// AmountValidator adapts ParseAmount to the func(string) error shape prompts expect.
func AmountValidator(s string) error {
	_, err := ParseAmount(constants.ElemAmount, s)
	return err
}

// NoteValidator adapts ValidateNote to the func(string) error shape prompts expect.
func NoteValidator(s string) error {
	return ValidateNote(constants.ElemNote, s)
}

package validation

import (
	"errors"
	"strings"
)

var ErrNotCurrency = errors.New("must be a 3-letter ISO 4217 code")

// ParseCurrency normalises a currency code such as " eur " to "EUR".
func ParseCurrency(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", &FieldError{Field: "currency", Err: ErrEmpty}
	}
	if len(code) != 3 {
		return "", &FieldError{Field: "currency", Value: raw, Err: ErrNotCurrency}
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", &FieldError{Field: "currency", Value: raw, Err: ErrNotCurrency}
		}
	}
	return code, nil
}

func CurrencyValidator(s string) error {
	_, err := ParseCurrency(s)
	return err
}

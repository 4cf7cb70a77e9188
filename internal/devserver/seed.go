package devserver

import (
	"fmt"

	"github.com/hance08/fintrack/internal/store"
)

var demoReferences = map[store.Kind][]string{
	store.KindUser:          {"Alice", "Bob"},
	store.KindCategory:      {"Groceries", "Transport", "Dining", "Utilities"},
	store.KindPaymentMethod: {"Cash", "Debit Card", "Credit Card"},
}

// Seed fills each empty reference table with demo rows. Tables that already
// hold data are left alone.
func Seed(repo store.Repository) error {
	for _, kind := range []store.Kind{store.KindUser, store.KindCategory, store.KindPaymentMethod} {
		count, err := repo.CountReferences(kind)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		for _, name := range demoReferences[kind] {
			if _, err := repo.CreateReference(kind, name); err != nil {
				return fmt.Errorf("failed to seed %s: %w", kind, err)
			}
		}
	}
	return nil
}

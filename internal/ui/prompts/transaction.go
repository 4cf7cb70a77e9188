package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hance08/fintrack/internal/validation"
)

var ErrNoOptions = errors.New("reference lists are empty, nothing to select")

// PromptTransactionForm lets the user fill the transaction form. Values are
// written back into the page elements only when the form completes.
func PromptTransactionForm(form *page.Form) error {
	if len(form.User.Options()) == 0 || len(form.Category.Options()) == 0 || len(form.PaymentMethod.Options()) == 0 {
		return ErrNoOptions
	}

	var user, category, method string
	amount := form.Amount.Value()
	note := form.Note.Value()

	err := huh.NewForm(
		huh.NewGroup(
			selectField("User:", form.User, &user),
			selectField("Category:", form.Category, &category),
			selectField("Payment Method:", form.PaymentMethod, &method),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Amount:").
				Description("Enter the amount, no need currency symbol(e.g. 150 or 150.50)").
				Value(&amount).
				Validate(validation.AmountValidator),
			huh.NewInput().
				Title("Note (optional):").
				Value(&note).
				Validate(validation.NoteValidator),
		),
	).Run()
	if err != nil {
		return err
	}

	form.User.SetValue(user)
	form.Category.SetValue(category)
	form.PaymentMethod.SetValue(method)
	form.Amount.SetValue(amount)
	form.Note.SetValue(note)
	return nil
}

package prompts

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/validation"
)

const otherCurrency = "Other"

var displayCurrencies = []string{"USD", "EUR", "GBP", "JPY", "TWD"}

// PromptDisplayCurrency asks for the code the transaction list shows amounts
// with. The free-text step only appears when "Other" is chosen.
func PromptDisplayCurrency(current string) (string, error) {
	choice, custom := current, ""
	if !slices.Contains(displayCurrencies, current) {
		choice, custom = otherCurrency, current
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display currency:").
				Description("Amounts from the tracker are shown with this code").
				Options(huh.NewOptions(append(slices.Clone(displayCurrencies), otherCurrency)...)...).
				Value(&choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Currency code:").
				Description("ISO 4217, e.g. CHF").
				Value(&custom).
				Validate(validation.CurrencyValidator),
		).WithHideFunc(func() bool { return choice != otherCurrency }),
	).Run()
	if err != nil {
		return "", err
	}

	if choice != otherCurrency {
		return choice, nil
	}
	return validation.ParseCurrency(custom)
}

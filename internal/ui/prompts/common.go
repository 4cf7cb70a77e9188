package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/ui"
	"github.com/hance08/fintrack/internal/ui/page"
)

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	err := survey.AskOne(prompt, &confirm, ui.SurveyOptions()...)

	return confirm, err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}

// selectField builds a huh select over the options of a page selector,
// preselecting its current value.
func selectField(title string, sel *page.Select, value *string) *huh.Select[string] {
	*value = sel.Value()

	var opts []huh.Option[string]
	for _, o := range sel.Options() {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value).
		Height(10)
}

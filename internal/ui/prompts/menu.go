package prompts

const (
	MenuAdd     = "Add transaction"
	MenuRefresh = "Refresh"
	MenuRefs    = "Show users, categories and payment methods"
	MenuDismiss = "Dismiss alerts"
	MenuQuit    = "Quit"
)

// PromptMainMenu asks what to do next in the interactive session.
func PromptMainMenu() (string, error) {
	return PromptSelect("What would you like to do?", []string{
		MenuAdd,
		MenuRefresh,
		MenuRefs,
		MenuDismiss,
		MenuQuit,
	}, MenuAdd)
}

package constants

const (
	// Backend resources
	PathUsers          = "/users/"
	PathCategories     = "/categories/"
	PathPaymentMethods = "/payment-methods/"
	PathTransactions   = "/transactions/"

	// Notification levels
	LevelSuccess = "success"
	LevelDanger  = "danger"

	// Display layouts
	DateTimeFormat = "2006-01-02 15:04:05"
	AmountDecimals = 2
)

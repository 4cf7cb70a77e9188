package constants

// Page element ids the front-end binds to.
const (
	ElemUser             = "user"
	ElemCategory         = "category"
	ElemPaymentMethod    = "payment-method"
	ElemAmount           = "amount"
	ElemNote             = "note"
	ElemTransactionForm  = "transaction-form"
	ElemTransactionsBody = "transactions-body"
	ElemAlertPlaceholder = "alert-placeholder"
)

const MaxNoteLen = 255

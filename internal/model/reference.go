package model

// ReferenceItem is a backend-owned lookup entity: a user, a category or a
// payment method.
type ReferenceItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

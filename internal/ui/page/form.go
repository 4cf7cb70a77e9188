package page

import (
	"context"
	"sync"
)

// SubmitHandler runs when the form is submitted.
type SubmitHandler func(ctx context.Context) error

// Form groups the five transaction inputs under the transaction-form id.
type Form struct {
	ID            string
	User          *Select
	Category      *Select
	PaymentMethod *Select
	Amount        *Input
	Note          *Input

	mu       sync.Mutex
	handlers []SubmitHandler
}

// OnSubmit attaches a handler. Attaching twice runs it twice.
func (f *Form) OnSubmit(h SubmitHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, h)
}

func (f *Form) HandlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}

// Submit runs every attached handler in order and returns the first error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	handlers := append([]SubmitHandler(nil), f.handlers...)
	f.mu.Unlock()

	var firstErr error
	for _, h := range handlers {
		if err := h(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Reset clears every field back to its initial state.
func (f *Form) Reset() {
	f.User.Reset()
	f.Category.Reset()
	f.PaymentMethod.Reset()
	f.Amount.Reset()
	f.Note.Reset()
}

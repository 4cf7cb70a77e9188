package service

import (
	"context"
	"sync"

	"github.com/hance08/fintrack/internal/ui/page"
	"github.com/hashicorp/go-multierror"
)

// Sequencer runs the start-up sequence of the front-end.
type Sequencer struct {
	renderer *Renderer
	binder   *Binder
	form     *page.Form
	wire     sync.Once
}

func NewSequencer(renderer *Renderer, binder *Binder, form *page.Form) *Sequencer {
	return &Sequencer{renderer: renderer, binder: binder, form: form}
}

// Bootstrap populates the dropdowns, then loads the transactions, and attaches
// the submit handler. Both load steps run even if the first fails; their
// errors are returned together. The handler is attached only on the first call.
func (s *Sequencer) Bootstrap(ctx context.Context) error {
	var result *multierror.Error

	if err := s.renderer.PopulateDropdowns(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.renderer.LoadTransactions(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	s.wire.Do(func() {
		s.form.OnSubmit(s.binder.Submit)
	})

	return result.ErrorOrNil()
}

package page

import (
	"fmt"
	"sync"

	"github.com/hance08/fintrack/internal/constants"
)

// Page is the document the front-end renders into. Elements are looked up
// once by id and then passed around as handles.
type Page struct {
	mu       sync.Mutex
	elements map[string]any
	alerts   *AlertContainer
}

// New builds a page with the transaction form and a table body registered
// under tableID. The alert container is not created until first needed.
func New(tableID string) *Page {
	if tableID == "" {
		tableID = constants.ElemTransactionsBody
	}

	p := &Page{elements: make(map[string]any)}

	form := &Form{
		ID:            constants.ElemTransactionForm,
		User:          NewSelect(constants.ElemUser),
		Category:      NewSelect(constants.ElemCategory),
		PaymentMethod: NewSelect(constants.ElemPaymentMethod),
		Amount:        NewInput(constants.ElemAmount),
		Note:          NewInput(constants.ElemNote),
	}

	p.register(form.ID, form)
	p.register(form.User.ID, form.User)
	p.register(form.Category.ID, form.Category)
	p.register(form.PaymentMethod.ID, form.PaymentMethod)
	p.register(form.Amount.ID, form.Amount)
	p.register(form.Note.ID, form.Note)
	p.register(tableID, NewTableBody(tableID))

	return p
}

func (p *Page) register(id string, el any) {
	p.elements[id] = el
}

func (p *Page) Form(id string) (*Form, error) {
	return lookup[*Form](p, id)
}

func (p *Page) Select(id string) (*Select, error) {
	return lookup[*Select](p, id)
}

func (p *Page) Input(id string) (*Input, error) {
	return lookup[*Input](p, id)
}

func (p *Page) TableBody(id string) (*TableBody, error) {
	return lookup[*TableBody](p, id)
}

// EnsureAlertContainer returns the alert container, creating it on first use.
func (p *Page) EnsureAlertContainer() *AlertContainer {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.alerts == nil {
		p.alerts = &AlertContainer{ID: constants.ElemAlertPlaceholder}
		p.elements[p.alerts.ID] = p.alerts
	}
	return p.alerts
}

func lookup[T any](p *Page, id string) (T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var zero T
	el, ok := p.elements[id]
	if !ok {
		return zero, fmt.Errorf("element #%s not found", id)
	}
	typed, ok := el.(T)
	if !ok {
		return zero, fmt.Errorf("element #%s has type %T", id, el)
	}
	return typed, nil
}

package page

import "sync"

type Option struct {
	Label string
	Value string
}

// Select is a selector element. Options are only ever appended.
type Select struct {
	ID string

	mu      sync.Mutex
	options []Option
	value   string
}

func NewSelect(id string) *Select {
	return &Select{ID: id}
}

func (s *Select) Append(opt Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = append(s.options, opt)
}

func (s *Select) Options() []Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Value returns the selected value. With nothing chosen it falls back to the
// first option, the way a browser select does.
func (s *Select) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == "" && len(s.options) > 0 {
		return s.options[0].Value
	}
	return s.value
}

func (s *Select) SetValue(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
}

// LabelFor returns the label of the option holding value, or "".
func (s *Select) LabelFor(value string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

func (s *Select) Reset() {
	s.SetValue("")
}

// Input is a free text input.
type Input struct {
	ID string

	mu    sync.Mutex
	value string
}

func NewInput(id string) *Input {
	return &Input{ID: id}
}

func (i *Input) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

func (i *Input) SetValue(v string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = v
}

func (i *Input) Reset() {
	i.SetValue("")
}

// TableBody is a display surface made of rows of cells.
type TableBody struct {
	ID string

	mu   sync.Mutex
	rows [][]string
}

func NewTableBody(id string) *TableBody {
	return &TableBody{ID: id}
}

func (b *TableBody) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = nil
}

func (b *TableBody) AppendRow(cells ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row := make([]string, len(cells))
	copy(row, cells)
	b.rows = append(b.rows, row)
}

// Replace swaps every row at once so readers never observe a half-built body.
func (b *TableBody) Replace(rows [][]string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = rows
}

func (b *TableBody) Rows() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

func (b *TableBody) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.rows)
}

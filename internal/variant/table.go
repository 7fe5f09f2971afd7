package variant

import (
	"fmt"

	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

// Entry names a variant definition.
type Entry struct {
	Name       string
	Definition Definition
}

// Table is an insertion-ordered registry of variants. Declaration order is
// resolution order: later variants override earlier ones on colliding keys.
// A Table is immutable once built.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a Table, rejecting empty and duplicate names.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("variants[%d].name", i), "variant name is required", nil)
		}
		if _, exists := t.index[e.Name]; exists {
			return nil, apperrors.NewValidationError(fmt.Sprintf("variants[%d].name", i), fmt.Sprintf("duplicate variant %q", e.Name), nil)
		}
		t.index[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Len returns the number of variants.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Has reports whether a variant is declared.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Lookup returns the definition for name.
func (t *Table) Lookup(name string) (Definition, bool) {
	if t == nil {
		return Definition{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return Definition{}, false
	}
	return t.entries[i].Definition, true
}

// Names returns variant names in declaration order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

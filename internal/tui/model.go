// Package tui implements the interactive variant explorer: pick a value for
// each variant, flip between platforms and watch the resolved style and the
// terminal preview update.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/variantkit/internal/catalog"
	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

// DefaultSample is the text drawn in the preview pane.
const DefaultSample = "The quick brown fox jumps over the lazy dog"

// row is one variant and the values the explorer cycles through. The first
// option is always Undefined so the variant can be left absent.
type row struct {
	name    string
	options []style.Value
	chosen  int
}

func (r row) value() style.Value {
	return r.options[r.chosen]
}

// Options configures the explorer.
type Options struct {
	Platform platform.Platform
	Sample   string
	// Props seeds the selection. Values not offered by a variant are added
	// to its options.
	Props style.Props
}

// Model contains the Bubbletea state for the explorer.
type Model struct {
	component catalog.Component
	platform  platform.Platform
	sample    string

	rows   []row
	cursor int

	input resolver.RenderInput
	trace resolver.Trace
	err   error

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds an explorer for comp.
func NewModel(comp catalog.Component, opts Options) Model {
	sample := opts.Sample
	if sample == "" {
		sample = DefaultSample
	}

	m := Model{
		component: comp,
		platform:  opts.Platform,
		sample:    sample,
		rows:      buildRows(comp.Specs, opts.Props),
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.resolve()
	return m
}

func buildRows(specs resolver.Specs, seed style.Props) []row {
	var rows []row
	index := map[string]int{}

	for _, p := range platform.All {
		spec := specs.For(p)
		if spec == nil {
			continue
		}
		for _, entry := range spec.Variants().Entries() {
			i, seen := index[entry.Name]
			if !seen {
				i = len(rows)
				index[entry.Name] = i
				rows = append(rows, row{name: entry.Name, options: []style.Value{style.Undefined()}})
			}
			for _, sample := range entry.Definition.Samples() {
				rows[i].options = appendUnique(rows[i].options, sample)
			}
		}
	}

	for i := range rows {
		v, ok := seed.Get(rows[i].name)
		if !ok {
			continue
		}
		rows[i].options = appendUnique(rows[i].options, v)
		for j, option := range rows[i].options {
			if option.Equal(v) {
				rows[i].chosen = j
				break
			}
		}
	}
	return rows
}

func appendUnique(values []style.Value, v style.Value) []style.Value {
	for _, existing := range values {
		if existing.Equal(v) {
			return values
		}
	}
	return append(values, v)
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Props returns the currently selected props.
func (m Model) Props() style.Props {
	props := style.Props{}
	for _, r := range m.rows {
		if v := r.value(); !v.IsUndefined() {
			props[r.name] = v
		}
	}
	return props
}

// Platform returns the platform being previewed.
func (m Model) Platform() platform.Platform {
	return m.platform
}

// RenderInput returns the last resolution.
func (m Model) RenderInput() resolver.RenderInput {
	return m.input
}

// Err returns the error of the last resolution, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) resolve() {
	spec := m.component.Specs.For(m.platform)
	if spec == nil {
		m.input, m.trace, m.err = resolver.RenderInput{}, resolver.Trace{}, nil
		return
	}
	m.input, m.trace, m.err = resolver.ResolveTrace(spec, m.Props())
}

// available reports whether the row's variant exists on the current platform.
func (m Model) available(r row) bool {
	spec := m.component.Specs.For(m.platform)
	return spec != nil && spec.Variants().Has(r.name)
}

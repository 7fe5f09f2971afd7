package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.cycle(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.cycle(-1)
		return m, nil

	case key.Matches(msg, m.keys.Platform):
		if m.platform == platform.Web {
			m.platform = platform.Native
		} else {
			m.platform = platform.Web
		}
		m.resolve()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		rows := append([]row(nil), m.rows...)
		for i := range rows {
			rows[i].chosen = 0
		}
		m.rows = rows
		m.resolve()
		return m, nil
	}
	return m, nil
}

func (m *Model) cycle(delta int) {
	if len(m.rows) == 0 {
		return
	}
	rows := append([]row(nil), m.rows...)
	r := &rows[m.cursor]
	n := len(r.options)
	r.chosen = ((r.chosen+delta)%n + n) % n
	m.rows = rows
	m.resolve()
}

package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/variantkit/internal/preview"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

const defaultPreviewWidth = 40

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	title := titleStyle.Render(fmt.Sprintf("variantkit • %s", m.component.Name)) +
		" " + platformStyle.Render("["+m.platform.String()+"]")
	sections = append(sections, title)

	sections = append(sections, sectionStyle.Render("Variants"))
	if len(m.rows) == 0 {
		sections = append(sections, absentStyle.Render(" no variants"))
	} else {
		sections = append(sections, m.renderRows())
	}

	if m.err != nil {
		sections = append(sections, sectionStyle.Render("Error"), errorStyle.Render(m.err.Error()))
	} else {
		sections = append(sections, sectionStyle.Render("Style"), renderFragment(m.input.Style))
		if len(m.input.Forwarded) > 0 {
			sections = append(sections, sectionStyle.Render("Forwarded"), renderFragment(style.Fragment(m.input.Forwarded)))
		}
		if len(m.input.Deferred) > 0 {
			sections = append(sections, sectionStyle.Render("Deferred"), m.renderDeferred())
		}
		sections = append(sections, sectionStyle.Render("Preview"), m.renderPreview())
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRows() string {
	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
		}

		value := r.value()
		rendered := valueStyle.Render(formatValue(value))
		if value.IsUndefined() {
			rendered = absentStyle.Render("unset")
		}

		line := fmt.Sprintf("%s%s = %s", marker, r.name, rendered)
		if !m.available(r) {
			line += absentStyle.Render(fmt.Sprintf(" (not on %s)", m.platform))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDeferred() string {
	names := make([]string, 0, len(m.input.Deferred))
	for name := range m.input.Deferred {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf(" %s: %s", keyStyle.Render(name), inlineFragment(m.input.Deferred[name])))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview() string {
	width := defaultPreviewWidth
	if m.width > 8 && m.width-8 < width {
		width = m.width - 8
	}
	body := preview.Render(m.input, m.sample, preview.Options{Width: width})
	if body == "" {
		body = absentStyle.Render("(hidden)")
	}
	return previewFrame.Render(body)
}

func renderFragment(frag style.Fragment) string {
	if len(frag) == 0 {
		return absentStyle.Render(" (empty)")
	}
	lines := make([]string, 0, len(frag))
	for _, k := range frag.Keys() {
		lines = append(lines, fmt.Sprintf(" %s: %s", keyStyle.Render(k), formatValue(frag[k])))
	}
	return strings.Join(lines, "\n")
}

func inlineFragment(frag style.Fragment) string {
	parts := make([]string, 0, len(frag))
	for _, k := range frag.Keys() {
		parts = append(parts, k+"="+formatValue(frag[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatValue(v style.Value) string {
	if s, ok := v.Str(); ok {
		return strconv.Quote(s)
	}
	return v.String()
}

// Package preview renders a resolved component in the terminal. It plays the
// part of the rendering primitive: it reads a RenderInput and maps the style
// keys a terminal can express onto lipgloss.
package preview

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

// cellPixels is how many style pixels make one terminal cell.
const cellPixels = 8

const ellipsis = "…"

// Options configures Render.
type Options struct {
	Theme Theme
	// Width bounds the text in cells. Zero means unbounded.
	Width int
}

// EffectiveStyle is the style a runtime would apply: the resolved style with
// every deferred fragment whose live prop is truthy merged on top.
func EffectiveStyle(in resolver.RenderInput) style.Fragment {
	layers := []style.Fragment{in.Style}

	names := make([]string, 0, len(in.Deferred))
	for name := range in.Deferred {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, ok := in.Forwarded.Get(name); ok && truthy(v) {
			layers = append(layers, in.Deferred[name])
		}
	}
	return style.Merge(layers...).Flatten()
}

// StyleFor maps a style fragment onto a lipgloss style. Keys without a
// terminal equivalent are ignored.
func StyleFor(frag style.Fragment, theme Theme) lipgloss.Style {
	s := lipgloss.NewStyle()

	if c, ok := theme.Color(frag["color"]); ok {
		s = s.Foreground(c)
	}
	if c, ok := theme.Color(frag["backgroundColor"]); ok {
		s = s.Background(c)
	}
	if isBold(frag["fontWeight"]) {
		s = s.Bold(true)
	}
	if v, _ := frag["fontStyle"].Str(); v == "italic" {
		s = s.Italic(true)
	}
	if decoration, ok := frag["textDecorationLine"].Str(); ok {
		s = s.Underline(strings.Contains(decoration, "underline")).
			Strikethrough(strings.Contains(decoration, "line-through"))
	}
	if n, ok := frag["opacity"].Num(); ok && n < 1 {
		s = s.Faint(true)
	}

	if n, ok := cells(frag["padding"]); ok {
		s = s.Padding(n)
	}
	if n, ok := cells(frag["paddingVertical"]); ok {
		s = s.PaddingTop(n).PaddingBottom(n)
	}
	if n, ok := cells(frag["paddingHorizontal"]); ok {
		s = s.PaddingLeft(n).PaddingRight(n)
	}

	if n, ok := frag["borderWidth"].Num(); ok && n > 0 {
		s = s.Border(lipgloss.RoundedBorder())
		if c, ok := theme.Color(frag["borderColor"]); ok {
			s = s.BorderForeground(c)
		}
	}

	return s
}

// Render draws text the way in asks for it.
func Render(in resolver.RenderInput, text string, opts Options) string {
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	frag := EffectiveStyle(in)
	if v, _ := frag["display"].Str(); v == "none" {
		return ""
	}

	body := layout(text, frag, textWidth(frag, opts.Width))
	return StyleFor(frag, theme).Render(body)
}

func layout(text string, frag style.Fragment, width int) string {
	lines := lineLimit(frag)
	whiteSpace, _ := frag["whiteSpace"].Str()
	overflow, _ := frag["textOverflow"].Str()
	lineBreak, _ := frag["lineBreakMode"].Str()

	if whiteSpace == "nowrap" || lines == 1 {
		line := strings.Join(strings.Fields(text), " ")
		if width > 0 && ansi.StringWidth(line) > width {
			tail := ""
			if overflow == "ellipsis" || (lines == 1 && lineBreak != "clip") {
				tail = ellipsis
			}
			line = ansi.Truncate(line, width, tail)
		}
		return line
	}

	if width <= 0 {
		return text
	}

	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	rows := strings.Split(wrapped, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	if lines > 0 && len(rows) > lines {
		rows = rows[:lines]
		last := rows[lines-1]
		if ansi.StringWidth(last)+ansi.StringWidth(ellipsis) > width {
			last = ansi.Truncate(last, width, ellipsis)
		} else {
			last += ellipsis
		}
		rows[lines-1] = last
	}
	return strings.Join(rows, "\n")
}

// lineLimit reads a web line clamp or a native numberOfLines.
func lineLimit(frag style.Fragment) int {
	for _, key := range []string{"WebkitLineClamp", "numberOfLines"} {
		if n, ok := frag[key].Num(); ok && n >= 1 {
			return int(n)
		}
	}
	return 0
}

func textWidth(frag style.Fragment, limit int) int {
	width := 0
	for _, key := range []string{"width", "maxWidth"} {
		if n, ok := cells(frag[key]); ok && n > 0 && (width == 0 || n < width) {
			width = n
		}
	}
	if limit > 0 && (width == 0 || limit < width) {
		width = limit
	}
	return width
}

func cells(v style.Value) (int, bool) {
	n, ok := v.Num()
	if !ok || n < 0 {
		return 0, false
	}
	return int(math.Round(n / cellPixels)), true
}

func isBold(v style.Value) bool {
	if n, ok := v.Num(); ok {
		return n >= 600
	}
	s, ok := v.Str()
	if !ok {
		return false
	}
	if s == "bold" || s == "bolder" {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 600
}

func truthy(v style.Value) bool {
	switch v.Kind() {
	case style.KindBool:
		b, _ := v.Boolean()
		return b
	case style.KindNumber:
		n, _ := v.Num()
		return n != 0
	case style.KindString:
		s, _ := v.Str()
		return s != ""
	default:
		return false
	}
}

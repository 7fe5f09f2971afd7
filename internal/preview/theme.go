package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

// Template maps a theme slot to a step of a twelve-step palette.
type Template map[string]int

// BaseTemplate assigns every base slot a palette step. Step 0 is the
// background end of the scale and step 11 the foreground end.
var BaseTemplate = Template{
	"background":            1,
	"backgroundHover":       2,
	"backgroundPress":       3,
	"backgroundFocus":       2,
	"backgroundStrong":      0,
	"backgroundTransparent": 0,
	"color":                 11,
	"colorHover":            10,
	"colorPress":            11,
	"colorFocus":            10,
	"colorTransparent":      11,
	"borderColor":           4,
	"borderColorHover":      5,
	"borderColorFocus":      6,
	"borderColorPress":      5,
	"placeholderColor":      8,
	"color1":                0,
	"color2":                1,
	"color3":                2,
	"color4":                3,
	"color5":                4,
	"color6":                5,
	"color7":                6,
	"color8":                7,
	"color9":                8,
	"color10":               9,
	"color11":               10,
	"color12":               11,
}

// DarkPalette is a grayscale ramp from near black to near white.
var DarkPalette = []lipgloss.Color{
	"232", "234", "236", "238", "240", "242",
	"244", "246", "248", "250", "252", "255",
}

// LightPalette mirrors DarkPalette.
var LightPalette = []lipgloss.Color{
	"255", "253", "251", "249", "247", "245",
	"243", "241", "239", "237", "235", "232",
}

// Theme resolves "$token" style values to terminal colors.
type Theme map[string]lipgloss.Color

// NewTheme builds a theme by picking palette steps through template. Slots
// that point outside the palette are left out.
func NewTheme(palette []lipgloss.Color, template Template) Theme {
	theme := make(Theme, len(template))
	for slot, step := range template {
		if step < 0 || step >= len(palette) {
			continue
		}
		theme[slot] = palette[step]
	}
	return theme
}

// DefaultTheme is the dark base theme.
func DefaultTheme() Theme {
	return NewTheme(DarkPalette, BaseTemplate)
}

var namedColors = map[string]lipgloss.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// Color resolves a style value. Tokens start with "$"; hex colors, ANSI
// codes and a handful of CSS names are passed through.
func (t Theme) Color(v style.Value) (lipgloss.Color, bool) {
	s, ok := v.Str()
	if !ok || s == "" {
		return "", false
	}
	if token, isToken := strings.CutPrefix(s, "$"); isToken {
		c, found := t[token]
		return c, found
	}
	if strings.HasPrefix(s, "#") {
		return lipgloss.Color(s), true
	}
	if c, found := namedColors[strings.ToLower(s)]; found {
		return c, true
	}
	if isDigits(s) {
		return lipgloss.Color(s), true
	}
	return "", false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
)

func TestViewShowsSelectionAndStyle(t *testing.T) {
	t.Parallel()

	m := NewModel(textComponent(), Options{Platform: platform.Web, Sample: "sample text"})
	m = press(t, m, "right")

	view := ansi.Strip(m.View())
	require.Contains(t, view, "variantkit • Text")
	require.Contains(t, view, "[web]")
	require.Contains(t, view, "numberOfLines = 1")
	require.Contains(t, view, "ellipsizeMode = unset")
	require.Contains(t, view, `whiteSpace: "nowrap"`)
	require.Contains(t, view, "sample text")
	require.Contains(t, view, "quit")
}

func TestViewMarksVariantsMissingOnPlatform(t *testing.T) {
	t.Parallel()

	m := NewModel(textComponent(), Options{Platform: platform.Native})
	view := ansi.Strip(m.View())
	require.Contains(t, view, "numberOfLines = unset (not on native)")
}

func TestViewShowsDeferredFragments(t *testing.T) {
	t.Parallel()

	m := NewModel(textComponent(), Options{Platform: platform.Native})
	m = press(t, m, "down", "down", "down", "right")

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Deferred")
	require.Contains(t, view, `ellipse: {lineBreakMode="clip", numberOfLines=1}`)
}

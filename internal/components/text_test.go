package components

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
)

func resolveText(t *testing.T, p platform.Platform, props style.Props) resolver.RenderInput {
	t.Helper()
	out, err := Text.Resolve(p, props)
	require.NoError(t, err)
	return out
}

func TestTextDefaultsPerPlatform(t *testing.T) {
	t.Parallel()

	web := resolveText(t, platform.Web, nil)
	require.Equal(t, "inline", web.Style["display"].String())
	require.Equal(t, "$color", web.Style["color"].String(), "tokens pass through untouched")
	require.Equal(t, "border-box", web.Style["boxSizing"].String())
	require.True(t, web.Style["margin"].Equal(style.Int(0)))
	require.Empty(t, web.Forwarded)

	native := resolveText(t, platform.Native, nil)
	require.Equal(t, "flex", native.Style["display"].String())
	_, hasMargin := native.Style["margin"]
	require.False(t, hasMargin)
	require.True(t, native.Forwarded["suppressHighlighting"].Equal(style.Bool(true)))
}

func TestNumberOfLinesClampsOnWeb(t *testing.T) {
	t.Parallel()

	for _, n := range []float64{2, 3, 7, 2.5} {
		out := resolveText(t, platform.Web, style.Props{"numberOfLines": style.Number(n)})
		require.True(t, out.Style["WebkitLineClamp"].Equal(style.Number(n)), "n=%v", n)
		require.Equal(t, "-webkit-box", out.Style["display"].String())
		require.Equal(t, "vertical", out.Style["WebkitBoxOrient"].String())
		require.Equal(t, "hidden", out.Style["overflow"].String())
		_, forwarded := out.Forwarded["numberOfLines"]
		require.False(t, forwarded, "consumed variant props are not forwarded")
	}
}

func TestNumberOfLinesBelowOneContributesNothing(t *testing.T) {
	t.Parallel()

	baseline := resolveText(t, platform.Web, nil)
	for _, n := range []float64{0, -1, 0.5, math.NaN()} {
		out := resolveText(t, platform.Web, style.Props{"numberOfLines": style.Number(n)})
		require.Equal(t, baseline.Style, out.Style, "n=%v", n)
	}
}

func TestNumberOfLinesNaNStaysEncodable(t *testing.T) {
	t.Parallel()

	out := resolveText(t, platform.Web, style.Props{"numberOfLines": style.Number(math.NaN())})
	_, clamped := out.Style["WebkitLineClamp"]
	require.False(t, clamped)

	_, err := json.Marshal(out)
	require.NoError(t, err)
}

func TestNumberOfLinesOneUsesLiteralBranch(t *testing.T) {
	t.Parallel()

	out := resolveText(t, platform.Web, style.Props{"numberOfLines": style.Int(1)})
	require.Equal(t, "nowrap", out.Style["whiteSpace"].String())
	require.Equal(t, "ellipsis", out.Style["textOverflow"].String())
	require.Equal(t, "100%", out.Style["maxWidth"].String())
	_, clamped := out.Style["WebkitLineClamp"]
	require.False(t, clamped, "literal 1 must win over the numeric predicate")
	require.Equal(t, "inline", out.Style["display"].String())
}

func TestNumberOfLinesIsForwardedOnNative(t *testing.T) {
	t.Parallel()

	require.False(t, Text.Native.Variants().Has("numberOfLines"))

	out := resolveText(t, platform.Native, style.Props{"numberOfLines": style.Int(3)})
	require.True(t, out.Forwarded["numberOfLines"].Equal(style.Int(3)))
	_, clamped := out.Style["WebkitLineClamp"]
	require.False(t, clamped)
}

func TestSelectableIsExhaustiveOverBooleans(t *testing.T) {
	t.Parallel()

	for _, p := range platform.All {
		on := resolveText(t, p, style.Props{"selectable": style.Bool(true)})
		require.Equal(t, "text", on.Style["userSelect"].String(), p.String())
		require.Equal(t, "text", on.Style["cursor"].String(), p.String())

		off := resolveText(t, p, style.Props{"selectable": style.Bool(false)})
		require.Equal(t, "none", off.Style["userSelect"].String(), p.String())
		require.Equal(t, "default", off.Style["cursor"].String(), p.String())
	}
}

func TestEllipseBranchesPerPlatform(t *testing.T) {
	t.Parallel()

	web := resolveText(t, platform.Web, style.Props{"ellipse": style.Bool(true)})
	require.Equal(t, "100%", web.Style["maxWidth"].String())
	require.Equal(t, "hidden", web.Style["overflow"].String())
	require.Equal(t, "ellipsis", web.Style["textOverflow"].String())
	require.Equal(t, "nowrap", web.Style["whiteSpace"].String())
	require.Empty(t, web.Deferred)

	def, ok := Text.Native.Variants().Lookup("ellipse")
	require.True(t, ok)
	frag, _, err := def.Dispatch(style.Bool(true), nil)
	require.NoError(t, err)
	require.True(t, frag.Equal(style.Fragment{
		"numberOfLines": style.Int(1),
		"lineBreakMode": style.String("clip"),
	}))

	native := resolveText(t, platform.Native, style.Props{"ellipse": style.Bool(true)})
	require.True(t, native.Forwarded["ellipse"].Equal(style.Bool(true)), "deopt prop stays live")
	require.True(t, native.Deferred["ellipse"].Equal(frag))
	_, flattened := native.Style["lineBreakMode"]
	require.False(t, flattened)
}

func TestEllipseFalseContributesNothing(t *testing.T) {
	t.Parallel()

	baseline := resolveText(t, platform.Web, nil)
	out := resolveText(t, platform.Web, style.Props{"ellipse": style.Bool(false)})
	require.Equal(t, baseline.Style, out.Style)
}

func TestEllipsizeModeIsAcceptedAndIgnored(t *testing.T) {
	t.Parallel()

	for _, p := range platform.All {
		baseline := resolveText(t, p, nil)
		for _, mode := range []style.Value{style.String("tail"), style.String("middle"), style.Int(4), style.Null()} {
			out, trace, err := resolver.ResolveTrace(Text.For(p), style.Props{"ellipsizeMode": mode})
			require.NoError(t, err)
			require.Equal(t, baseline.Style, out.Style)
			_, forwarded := out.Forwarded["ellipsizeMode"]
			require.False(t, forwarded)
			require.Len(t, trace.Steps, 1)
			require.Equal(t, "wildcard", trace.Steps[0].Match.String())
		}
	}
}

func TestFontFamilyStaysInline(t *testing.T) {
	t.Parallel()

	out := resolveText(t, platform.Web, style.Props{"fontFamily": style.String("$body")})
	require.Equal(t, "$body", out.Style["fontFamily"].String())
	require.True(t, out.Inline.Equal(style.Fragment{"fontFamily": style.String("$body")}))
	require.Equal(t, []string{"fontFamily"}, Text.Web.InlineWhenUnflattened())
}

func TestClassNameIsForwarded(t *testing.T) {
	t.Parallel()

	out := resolveText(t, platform.Web, style.Props{"className": style.String("headline")})
	require.Equal(t, "headline", out.Forwarded["className"].String())
}

func TestIrrelevantPropsLeaveStyleUntouched(t *testing.T) {
	t.Parallel()

	for _, p := range platform.All {
		baseline := resolveText(t, p, style.Props{"selectable": style.Bool(true)})
		out := resolveText(t, p, style.Props{
			"selectable": style.Bool(true),
			"testID":     style.String("title"),
			"onPress":    style.String("handler"),
			"nativeID":   style.Null(),
		})
		require.Equal(t, baseline.Style, out.Style, p.String())
		require.Equal(t, "title", out.Forwarded["testID"].String())
	}
}

func TestCallerStyleOverridesDefaults(t *testing.T) {
	t.Parallel()

	out := resolveText(t, platform.Web, style.Props{"color": style.String("red"), "display": style.Undefined()})
	require.Equal(t, "red", out.Style["color"].String())
	_, hasDisplay := out.Style["display"]
	require.False(t, hasDisplay, "undefined hides the default")
}

func TestBuiltinsCompile(t *testing.T) {
	t.Parallel()

	for _, decl := range Builtins() {
		specs, err := resolver.Compile(decl)
		require.NoError(t, err)
		require.Equal(t, decl.Name, specs.Web.Name())
		require.Equal(t, platform.Native, specs.Native.Platform())
	}
}

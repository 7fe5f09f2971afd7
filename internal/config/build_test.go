package config

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/variantkit/internal/platform"
	"github.com/alexisbeaulieu97/variantkit/internal/resolver"
	"github.com/alexisbeaulieu97/variantkit/internal/style"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

func compileYAML(t *testing.T, contents string) resolver.Specs {
	t.Helper()
	file, err := Parse("component.yaml", []byte(contents))
	require.NoError(t, err)
	decl, err := file.Declaration()
	require.NoError(t, err)
	specs, err := resolver.Compile(decl)
	require.NoError(t, err)
	return specs
}

func TestDeclarationResolvesEndToEnd(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, cardYAML)

	out, err := specs.Resolve(platform.Web, style.Props{"padded": style.Bool(true), "size": style.Int(2)})
	require.NoError(t, err)
	require.True(t, out.Style["padding"].Equal(style.Int(16)))
	require.True(t, out.Style["width"].Equal(style.Int(240)), "number literal beats the number rule")
	require.True(t, out.Style["borderRadius"].Equal(style.Int(8)))
	require.Equal(t, "$background", out.Style["backgroundColor"].String())

	out, err = specs.Resolve(platform.Web, style.Props{"size": style.Int(300)})
	require.NoError(t, err)
	require.True(t, out.Style["width"].Equal(style.Int(300)), "placeholder takes the prop value")

	out, err = specs.Resolve(platform.Web, style.Props{"size": style.Int(0)})
	require.NoError(t, err)
	_, ok := out.Style["width"]
	require.False(t, ok, "below min contributes nothing")

	out, err = specs.Resolve(platform.Web, style.Props{"size": style.String("sm")})
	require.NoError(t, err)
	require.True(t, out.Style["width"].Equal(style.Int(120)))
}

func TestDeclarationPlatformScopes(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, cardYAML)
	require.True(t, specs.Web.Variants().Has("hover"))
	require.False(t, specs.Native.Variants().Has("hover"))

	out, err := specs.Resolve(platform.Native, style.Props{"hover": style.Bool(true)})
	require.NoError(t, err)
	require.True(t, out.Forwarded["hover"].Equal(style.Bool(true)))
	require.True(t, out.Style["elevation"].Equal(style.Int(2)))
}

func TestDeclarationPerPlatformRules(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, `name: Label
text: true
deopt:
  native: [truncate]
variants:
  - name: truncate
    web:
      cases:
        "true":
          whiteSpace: nowrap
    native:
      cases:
        "true":
          numberOfLines: 1
  - name: mode
    wildcard:
      style:
        opacity: 0.5
`)

	web, err := specs.Resolve(platform.Web, style.Props{"truncate": style.Bool(true), "mode": style.String("anything")})
	require.NoError(t, err)
	require.Equal(t, "nowrap", web.Style["whiteSpace"].String())
	require.True(t, web.Style["opacity"].Equal(style.Number(0.5)))

	native, err := specs.Resolve(platform.Native, style.Props{"truncate": style.Bool(true)})
	require.NoError(t, err)
	require.True(t, native.Forwarded["truncate"].Equal(style.Bool(true)))
	require.True(t, native.Deferred["truncate"]["numberOfLines"].Equal(style.Int(1)))
}

func TestDeclarationRejectsBooleanStyleValues(t *testing.T) {
	t.Parallel()

	file, err := Parse("x.yaml", []byte(`name: Box
variants:
  - name: on
    cases:
      "true":
        visible: true
`))
	require.NoError(t, err)

	_, err = file.Declaration()
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "visible")
}

func TestDeclarationRejectsDuplicateNumericCases(t *testing.T) {
	t.Parallel()

	file, err := Parse("x.yaml", []byte(`name: Box
variants:
  - name: level
    cases:
      "1": {width: 1}
      "1.0": {width: 2}
`))
	require.NoError(t, err)

	_, err = file.Declaration()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate literal")
}

func TestEmptyCaseStillMatches(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, `name: Box
variants:
  - name: flag
    cases:
      "true": {}
    wildcard:
      style:
        opacity: 0
`)

	_, trace, err := resolver.ResolveTrace(specs.Web, style.Props{"flag": style.Bool(true)})
	require.NoError(t, err)
	require.Equal(t, "boolean", trace.Steps[0].Match.String())
}

func TestNumberRuleIgnoresNaN(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, cardYAML)

	out, err := specs.Resolve(platform.Web, style.Props{"size": style.Number(math.NaN())})
	require.NoError(t, err)
	_, ok := out.Style["width"]
	require.False(t, ok)

	_, err = json.Marshal(out)
	require.NoError(t, err)
}

func TestNonDecimalCaseKeysStayStrings(t *testing.T) {
	t.Parallel()

	specs := compileYAML(t, `name: Box
variants:
  - name: level
    cases:
      "nan": {width: 1}
      "NaN": {width: 2}
      "inf": {width: 3}
      "Infinity": {width: 4}
      "0x1p4": {width: 5}
      "16": {width: 6}
`)

	cases := []struct {
		value style.Value
		want  int
	}{
		{style.String("nan"), 1},
		{style.String("NaN"), 2},
		{style.String("inf"), 3},
		{style.String("Infinity"), 4},
		{style.String("0x1p4"), 5},
		{style.Int(16), 6},
	}

	for _, tc := range cases {
		out, err := specs.Resolve(platform.Web, style.Props{"level": tc.value})
		require.NoError(t, err)
		require.True(t, out.Style["width"].Equal(style.Int(tc.want)), tc.value.String())
	}
}

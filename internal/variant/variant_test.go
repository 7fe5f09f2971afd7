package variant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/variantkit/internal/style"
	apperrors "github.com/alexisbeaulieu97/variantkit/pkg/errors"
)

var clampFn = func(n float64, _ style.Props) (style.Fragment, error) {
	if n < 1 {
		return nil, nil
	}
	return style.Fragment{"WebkitLineClamp": style.Number(n)}, nil
}

func TestDispatchPrecedence(t *testing.T) {
	t.Parallel()

	one := style.Fragment{"whiteSpace": style.String("nowrap")}
	wildcardHits := 0
	def := MustDefine(
		When(style.Int(1), one),
		When(style.String("auto"), style.Fragment{"overflow": style.String("auto")}),
		Numeric(clampFn),
		IfTrue(style.Fragment{"cursor": style.String("text")}),
		Otherwise(func(style.Value, style.Props) (style.Fragment, error) {
			wildcardHits++
			return style.Fragment{"wild": style.Bool(true)}, nil
		}),
	)

	tests := []struct {
		name      string
		value     style.Value
		wantMatch Match
		wantKeys  []string
	}{
		{"literal beats numeric", style.Int(1), MatchLiteral, []string{"whiteSpace"}},
		{"string literal", style.String("auto"), MatchLiteral, []string{"overflow"}},
		{"numeric", style.Int(3), MatchNumeric, []string{"WebkitLineClamp"}},
		{"numeric nil does not fall through", style.Int(0), MatchNumeric, nil},
		{"boolean branch", style.Bool(true), MatchBoolean, []string{"cursor"}},
		{"missing boolean side falls to wildcard", style.Bool(false), MatchWildcard, []string{"wild"}},
		{"unknown string hits wildcard", style.String("head"), MatchWildcard, []string{"wild"}},
		{"string one is not number one", style.String("1"), MatchWildcard, []string{"wild"}},
	}

	for _, tt := range tests {
		frag, match, err := def.Dispatch(tt.value, nil)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.wantMatch, match, tt.name)
		if tt.wantKeys == nil {
			require.Nil(t, frag, tt.name)
			continue
		}
		require.Equal(t, tt.wantKeys, frag.Keys(), tt.name)
	}
	require.Equal(t, 3, wildcardHits)
}

func TestDispatchWithoutMatchContributesNothing(t *testing.T) {
	t.Parallel()

	def := MustDefine(Boolean(
		style.Fragment{"userSelect": style.String("text")},
		style.Fragment{"userSelect": style.String("none")},
	))

	frag, match, err := def.Dispatch(style.String("sometimes"), nil)
	require.NoError(t, err)
	require.Equal(t, MatchNone, match)
	require.Nil(t, frag)
}

func TestDispatchPassesAllProps(t *testing.T) {
	t.Parallel()

	def := MustDefine(Numeric(func(n float64, props style.Props) (style.Fragment, error) {
		if props.Has("ellipse") {
			return nil, nil
		}
		return style.Fragment{"lines": style.Number(n)}, nil
	}))

	frag, _, err := def.Dispatch(style.Int(2), style.Props{"ellipse": style.Bool(true)})
	require.NoError(t, err)
	require.Nil(t, frag)

	frag, _, err = def.Dispatch(style.Int(2), style.Props{})
	require.NoError(t, err)
	require.True(t, frag["lines"].Equal(style.Int(2)))
}

func TestDispatchPropagatesMatcherErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	def := MustDefine(Numeric(func(float64, style.Props) (style.Fragment, error) {
		return nil, boom
	}))

	_, match, err := def.Dispatch(style.Int(2), nil)
	require.ErrorIs(t, err, boom)
	require.Equal(t, MatchNumeric, match)
}

func TestDispatchReturnsFreshFragments(t *testing.T) {
	t.Parallel()

	shared := style.Fragment{"overflow": style.String("hidden")}
	def := MustDefine(
		IfTrue(shared),
		Numeric(func(float64, style.Props) (style.Fragment, error) { return shared, nil }),
	)

	first, _, err := def.Dispatch(style.Bool(true), nil)
	require.NoError(t, err)
	first["overflow"] = style.String("visible")

	second, _, err := def.Dispatch(style.Bool(true), nil)
	require.NoError(t, err)
	require.Equal(t, "hidden", second["overflow"].String())

	numeric, _, err := def.Dispatch(style.Int(4), nil)
	require.NoError(t, err)
	numeric["overflow"] = style.String("scroll")
	require.Equal(t, "hidden", shared["overflow"].String())
}

func TestDefineRejectsMalformedTables(t *testing.T) {
	t.Parallel()

	frag := style.Fragment{"a": style.Int(1)}
	tests := []struct {
		name     string
		matchers []Matcher
	}{
		{"duplicate literal", []Matcher{When(style.Int(1), frag), When(style.Number(1), frag)}},
		{"bool literal", []Matcher{When(style.Bool(true), frag)}},
		{"undefined literal", []Matcher{When(style.Undefined(), frag)}},
		{"two numeric", []Matcher{Numeric(clampFn), Numeric(clampFn)}},
		{"nil numeric", []Matcher{Numeric(nil)}},
		{"two true branches", []Matcher{IfTrue(frag), Boolean(frag, nil)}},
		{"two wildcards", []Matcher{Ignore(), Ignore()}},
		{"nil wildcard", []Matcher{Otherwise(nil)}},
	}

	for _, tt := range tests {
		_, err := Define(tt.matchers...)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr, tt.name)
	}

	require.Panics(t, func() { MustDefine(Ignore(), Ignore()) })
}

func TestDefineCombinesBooleanSides(t *testing.T) {
	t.Parallel()

	def, err := Define(IfTrue(style.Fragment{"a": style.Int(1)}), IfFalse(style.Fragment{"b": style.Int(2)}))
	require.NoError(t, err)
	require.Equal(t, []string{"true", "false"}, def.Discriminants())
}

func TestDiscriminantsOrder(t *testing.T) {
	t.Parallel()

	def := MustDefine(Ignore(), Numeric(clampFn), When(style.Int(1), nil))
	require.Equal(t, []string{"1", NumberKey, WildcardKey}, def.Discriminants())
}

func TestTableKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	table, err := NewTable(
		Entry{Name: "selectable", Definition: MustDefine(Ignore())},
		Entry{Name: "ellipse", Definition: MustDefine(Ignore())},
		Entry{Name: "ellipsizeMode", Definition: MustDefine(Ignore())},
	)
	require.NoError(t, err)
	require.Equal(t, []string{"selectable", "ellipse", "ellipsizeMode"}, table.Names())
	require.Equal(t, 3, table.Len())
	require.True(t, table.Has("ellipse"))
	require.False(t, table.Has("numberOfLines"))

	_, ok := table.Lookup("numberOfLines")
	require.False(t, ok)

	entries := table.Entries()
	entries[0].Name = "mutated"
	require.Equal(t, "selectable", table.Names()[0])
}

func TestTableRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewTable(
		Entry{Name: "size", Definition: MustDefine(Ignore())},
		Entry{Name: "size", Definition: MustDefine(Ignore())},
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate variant")

	_, err = NewTable(Entry{Definition: MustDefine(Ignore())})
	require.Error(t, err)
}

func TestNilTableIsEmpty(t *testing.T) {
	t.Parallel()

	var table *Table
	require.Equal(t, 0, table.Len())
	require.Nil(t, table.Names())
	require.False(t, table.Has("x"))
}

func TestSamplesCoverSelectableBranches(t *testing.T) {
	t.Parallel()

	def := MustDefine(
		When(style.String("sm"), style.Fragment{"height": style.Int(20)}),
		When(style.Int(SampleNumber), style.Fragment{"height": style.Int(40)}),
		Numeric(clampFn),
		IfFalse(style.Fragment{}),
		Ignore(),
	)

	require.Equal(t, []style.Value{style.String("sm"), style.Int(SampleNumber), style.Bool(false)}, def.Samples())
	require.Empty(t, MustDefine(Ignore()).Samples())
}

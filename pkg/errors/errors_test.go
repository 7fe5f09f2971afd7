package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("button.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "button.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "button.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("button.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: button.yaml: boom", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("variants[1].name", "duplicate variant", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "variants[1].name", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate variant")
	require.Equal(t, "validation error: variants[1].name: duplicate variant", err.Error())
}

func TestMatcherErrorIncludesVariantContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad clamp")
	err := NewMatcherError("Text", "numberOfLines", underlying)

	var matcherErr *MatcherError
	require.ErrorAs(t, err, &matcherErr)
	require.Equal(t, "numberOfLines", matcherErr.Variant)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "Text.numberOfLines")
}

func TestLookupErrorListsKnownComponents(t *testing.T) {
	t.Parallel()

	err := NewLookupError("Buton", []string{"Button", "Text"})

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "Buton", lookupErr.Name)
	require.Contains(t, err.Error(), "Button")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var matcherErr *MatcherError
	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, matcherErr.Error())
	require.Nil(t, matcherErr.Unwrap())
}

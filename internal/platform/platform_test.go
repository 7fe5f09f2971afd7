package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"web", Web, false},
		{" Web ", Web, false},
		{"native", Native, false},
		{"ios", Native, false},
		{"android", Native, false},
		{"desktop", Web, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	var p Platform
	require.NoError(t, p.UnmarshalText([]byte("native")))
	require.Equal(t, Native, p)

	text, err := Web.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "web", string(text))
}

func TestChoiceSelectIsExclusive(t *testing.T) {
	t.Parallel()

	both := Both("inline", "flex")
	v, ok := both.Select(Web)
	require.True(t, ok)
	require.Equal(t, "inline", v)
	v, ok = both.Select(Native)
	require.True(t, ok)
	require.Equal(t, "flex", v)

	webOnly := Only(Web, 3)
	_, ok = webOnly.Select(Native)
	require.False(t, ok)
	require.Equal(t, 7, webOnly.Or(Native, 7))
	require.Equal(t, 3, webOnly.Or(Web, 7))

	var zero Choice[int]
	require.True(t, zero.IsZero())
	require.False(t, Same(1).IsZero())
}

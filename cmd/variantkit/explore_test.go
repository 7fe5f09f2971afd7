package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExploreRequiresTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "explore", "Text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a terminal")
}

func TestRootWithoutSubcommandPrintsHelp(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, stdout, "resolve")
	require.Contains(t, stdout, "explore")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--no-default-components"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const chipYAML = `name: Chip
description: compact label
base_style:
  borderRadius: 12
variants:
  - name: tone
    cases:
      danger:
        backgroundColor: red
  - name: raised
    web:
      cases:
        "true":
          boxShadow: 0 1px 2px
    native:
      cases:
        "true":
          elevation: 2
`

func componentDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chip.yaml"), []byte(chipYAML), 0o644))
	return dir
}

func writeBroken(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed\n"), 0o644))
	return dir
}

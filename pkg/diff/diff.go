// Package diff renders line-oriented unified diffs of two documents.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts the lines only present on one side.
type Stats struct {
	Removed int
	Added   int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Removed > 0 || s.Added > 0
}

// Unified compares two documents line by line and renders a single-hunk
// unified diff. It returns an empty string when the content is identical.
// Diffs longer than 10,000 lines are truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	diffs := lineDiffs(string(before), string(after))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(string(before)), countLines(string(after)))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// Summarize counts removed and added lines between two documents.
func Summarize(before, after []byte) Stats {
	var stats Stats
	if bytes.Equal(before, after) {
		return stats
	}
	for _, d := range lineDiffs(string(before), string(after)) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			stats.Removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			stats.Added += len(splitLines(d.Text))
		}
	}
	return stats
}

func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}

package tui

import (
	"github.com/leg100/go-runewidth"
	"github.com/leg100/reflow/truncate"
	"github.com/muesli/ansi"
)

// TruncateRight shortens s, which may contain ANSI sequences, to at most w
// cells, ending it with tail when shortened.
func TruncateRight(s string, w int, tail string) string {
	return truncate.StringWithTail(s, uint(max(0, w)), tail)
}

// TruncateLeft shortens s to at most w cells by dropping its beginning, which
// suits paths, where the end is the interesting part.
func TruncateLeft(s string, w int, prefix string) string {
	return runewidth.TruncateLeft(s, w, prefix)
}

// PrintableWidth returns the number of cells s occupies, ignoring ANSI
// sequences.
func PrintableWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

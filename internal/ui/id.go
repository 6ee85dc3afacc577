package ui

import (
	"os"

	"golang.org/x/term"
)

// HighlightID returns an ID with its unique prefix highlighted using the
// active theme's accent color.
func (s Styles) HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}

	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}

	if !ANSIEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return s.IDPrefix.Render(prefix) + suffix
}

// ANSIEnabled reports whether styled output should be emitted.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

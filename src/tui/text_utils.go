package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to maxLen display columns, ending in "..." when there
// is room for it.
func Truncate(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) > maxLen {
		if maxLen > 3 {
			return runewidth.Truncate(s, maxLen-3, "") + "..."
		}
		return runewidth.Truncate(s, maxLen, "")
	}
	return s
}

// Package strings provides string helpers shared across services
package strings

import std "strings"

// FirstLine returns the first line of s that has non whitespace content, trimmed
func FirstLine(s string) string {
	for _, ln := range std.Split(s, "\n") {
		if t := std.TrimSpace(ln); t != "" {
			return t
		}
	}
	return ""
}

// TruncateRunes shortens s to at most n runes, appending an ellipsis when cut
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "…"
}

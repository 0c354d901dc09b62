// Package utils holds small helpers shared by the CLI and the skills package.
package utils

import "unicode/utf8"

// TruncateStr returns a prefix of s of at most maxLen bytes, cutting on a
// UTF-8 character boundary.
func TruncateStr(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}

	end := maxLen
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

// Ellipsize truncates s to at most maxLen bytes, replacing the tail with
// "..." when it had to cut.
func Ellipsize(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return TruncateStr(s, maxLen)
	}
	return TruncateStr(s, maxLen-3) + "..."
}

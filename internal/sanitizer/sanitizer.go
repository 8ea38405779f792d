// Package sanitizer normalizes untrusted form input before validation.
package sanitizer

import "strings"

// Clean removes all ASCII control characters (0x00-0x1F, 0x7F) and trims
// leading/trailing whitespace.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

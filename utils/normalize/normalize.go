// Package normalize canonicalizes contact fields before comparison and
// storage. The same functions run ahead of the duplicate check and the
// write so `(123) 456-7890` and `1234567890` always compare equal.
package normalize

import "strings"

// Email trims and lowercases an email address. Format validation is
// handled by upper layers.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone strips every non-digit character. Letters and punctuation are
// discarded, not rejected.
func Phone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

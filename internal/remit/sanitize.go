package remit

import "strings"

// Sanitize replaces every maximal run of disallowed characters in val with
// replacement. Alphanumerics are always kept; so are characters of the
// replacement itself, which makes the operation idempotent for any
// replacement: with "" punctuation and spaces are deleted outright, with
// "_" they collapse to single underscores, and with " " punctuation runs
// become single spaces while literal spaces pass through untouched.
func Sanitize(val, replacement string) string {
	var b strings.Builder
	b.Grow(len(val))

	inRun := false
	for _, r := range val {
		if isAlphanumeric(r) || (replacement != "" && strings.ContainsRune(replacement, r)) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteString(replacement)
			inRun = true
		}
	}
	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

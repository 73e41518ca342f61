package domain

import "strings"

// Slug lowercases s and replaces every non-alphanumeric run with a single
// dash. Slugs are part of the signed-link wire format (exercise IDs and
// split file names), so the rule must stay stable.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

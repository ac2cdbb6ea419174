package report

import "strings"

// Canonical converts an arbitrary name into a lookup identifier: lowercase,
// every run of non-alphanumeric characters collapsed to a single underscore,
// leading and trailing underscores trimmed. The result contains only
// [a-z0-9_] and the transform is idempotent: Canonical(Canonical(s)) ==
// Canonical(s).
func Canonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}

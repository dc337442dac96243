package content

import "strings"

// Slugify lowercases s, collapses every run of non-alphanumeric characters to
// a single hyphen, and trims leading/trailing hyphens.
// "St. Patrick's Day!" becomes "st-patrick-s-day".
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

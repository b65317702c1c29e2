package semtag

import "strings"

// stripAffixes removes prefix and suffix from tag. ok is false when tag does
// not carry both, or when they would overlap.
func stripAffixes(tag, prefix, suffix string) (string, bool) {
	if len(tag) < len(prefix)+len(suffix) {
		return "", false
	}

	if !strings.HasPrefix(tag, prefix) || !strings.HasSuffix(tag, suffix) {
		return "", false
	}

	return tag[len(prefix) : len(tag)-len(suffix)], true
}

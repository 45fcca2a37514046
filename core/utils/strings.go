package utils

// Truncate shortens s to at most max runes, marking cut text with a
// trailing ellipsis. Strings at or under the limit come back unchanged.
func Truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// Coalesce returns the first non-empty value, or "" when all are empty.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package util

// Truncate shortens text to at most max runes, appending an ellipsis
// when anything was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

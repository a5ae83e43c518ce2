package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-ZàèìòùÀÈÌÒÙáéíóúÁÉÍÓÚäëïöüÄËÏÖÜñÑçÇ\s·.]+$`)
)

// Date layouts accepted by ValidDate and ParseDate. HTML date inputs send
// the first; upstream payloads occasionally carry the RFC 3339 form.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// String returns the trimmed value when it is non-blank, and "" otherwise.
// It never fails: callers cannot tell "absent" from "invalid" beyond the
// empty result.
func String(value string) string {
	return strings.TrimSpace(value)
}

// NullableString is String with an explicit absent marker: a nil pointer
// instead of the empty string.
func NullableString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Number coerces value to a finite float64, returning nil when the input
// does not parse or is NaN/Inf.
func Number(value string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// NullableNumber returns the value itself when finite, nil otherwise.
// It is the numeric counterpart of Number for fields that arrive already
// decoded from JSON.
func NullableNumber(n float64) *float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// Range clamps n into [min, max]. Non-finite input yields exactly min.
func Range(n, min, max float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return min
	}
	return math.Min(math.Max(n, min), max)
}

// RangeInt is Range for the integer trait scores.
func RangeInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Match reports whether the trimmed value is non-empty and matches re.
func Match(value string, re *regexp.Regexp) bool {
	trimmed := String(value)
	return trimmed != "" && re.MatchString(trimmed)
}

// Email reports whether value has the user@domain.tld shape.
func Email(value string) bool {
	return Match(value, emailRegex)
}

// Name reports whether value is a personal name: letters including
// accented Latin, spaces, dots and middle dots.
func Name(value string) bool {
	return Match(value, nameRegex)
}

// OneOf reports whether value is a member of allowed.
func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// ValidDate reports whether value parses as a calendar date.
func ValidDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}

// ParseDate parses value against the accepted date layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

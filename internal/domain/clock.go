package domain

import (
	"regexp"
	"strings"
)

var (
	fullClockPattern  = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
	shortClockPattern = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

// ValidateFullClock reports whether text is a 24-hour HH:MM:SS time.
// Surrounding whitespace is ignored.
func ValidateFullClock(text string) bool {
	return fullClockPattern.MatchString(strings.TrimSpace(text))
}

// ValidateShortClock reports whether text is a 24-hour HH:MM time.
func ValidateShortClock(text string) bool {
	return shortClockPattern.MatchString(strings.TrimSpace(text))
}

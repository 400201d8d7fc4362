package utils

import "github.com/microcosm-cc/bluemonday"

// Entry notes are plain text; strip any markup entirely.
var sanitizer = bluemonday.StrictPolicy()

// SanitizeNote cleans user supplied note text to prevent stored XSS.
func SanitizeNote(input string) string {
	return sanitizer.Sanitize(input)
}

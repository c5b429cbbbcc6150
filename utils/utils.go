package utils

import (
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slugify replaces runs of whitespace with dashes, used for download names.
func Slugify(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
}

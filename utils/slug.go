package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
// No collision handling: callers that need unique slugs enforce it at
// the database level.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

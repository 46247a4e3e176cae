package services

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanSearchTerm collapses runs of whitespace and trims the query.
func CleanSearchTerm(term string) string {
	cleaned := strings.TrimSpace(term)
	return whitespaceRe.ReplaceAllString(cleaned, " ")
}

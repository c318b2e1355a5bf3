package utils

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripPolicy = bluemonday.StripTagsPolicy()

// SanitizeHTML reduces client-supplied rich text to plain text: tags are
// stripped, entities decoded, whitespace collapsed. Plain text passes
// through unchanged.
func SanitizeHTML(s string) string {
	if s == "" {
		return s
	}

	s = stripPolicy.Sanitize(s)
	// bluemonday escapes entities on output; decode back to plain text.
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lowercases a string and removes diacritics so that search
// matches accent-insensitively.
func NormalizeText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Package slug derives URL-safe identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRun matches one or more whitespace characters
	whitespaceRun = regexp.MustCompile(`\s+`)
	// disallowed matches anything that is not a word character or hyphen
	disallowed = regexp.MustCompile(`[^\w-]`)
	// hyphenRun matches multiple consecutive hyphens
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Make converts a title into a URL-friendly slug: lowercased, trimmed,
// accents stripped, whitespace collapsed to hyphens, ampersands spelled
// out as "and". An empty title yields an empty slug.
func Make(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))

	// Decompose unicode and drop combining marks (é -> e)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = whitespaceRun.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")

	return s
}

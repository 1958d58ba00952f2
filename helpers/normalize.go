// Package helpers provides text normalization used to derive entity
// identifiers and literals from raw dataset cells.
package helpers

import (
	"regexp"
	"strings"
)

// UnknownToken is the sentinel returned by Slug for missing or empty input.
// Rows whose main identifier normalizes to this token are skipped.
const UnknownToken = "unknown"

var (
	// accentFold is a fixed transliteration table, not a general Unicode
	// fold. The exact pairing (including Ü→U and Ñ→N) determines entity
	// identity and must stay stable across releases.
	accentFold = strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
		"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
	)

	unsafeChars     = regexp.MustCompile(`[<>:"/\\|?*(){}\[\].,;'’]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	underscoreRuns  = regexp.MustCompile(`_+`)
)

// Slug turns arbitrary text into a URI-safe token. Missing or empty input
// yields UnknownToken. The output contains only lowercase ASCII letters,
// digits, underscore and hyphen.
//
// Uniqueness is not guaranteed: distinct inputs may collapse to the same
// token, which is how spelling variants of one entity merge.
func Slug(text string) string {
	if text == "" {
		return UnknownToken
	}
	text = accentFold.Replace(text)
	text = unsafeChars.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, "_")
	text = disallowedChars.ReplaceAllString(text, "")
	text = underscoreRuns.ReplaceAllString(text, "_")
	return strings.ToLower(text)
}

// CollapseSpaces normalizes internal whitespace runs to single spaces and
// trims the result.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
}

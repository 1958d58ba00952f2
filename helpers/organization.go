package helpers

import (
	"regexp"
	"strings"
)

var (
	// One trailing parenthetical group, optionally preceded by a comma:
	// "Ministry of Science (MINCIENCIAS)" -> "Ministry of Science".
	trailingParenthetical = regexp.MustCompile(`\s*,?\s*\([^)]*\)\s*$`)

	// A trailing comma followed by a short all-uppercase abbreviation:
	// "National Science Foundation, NSF" -> "National Science Foundation".
	trailingAbbreviation = regexp.MustCompile(`\s*,\s*[A-Z]{2,10}\s*$`)
)

// NormalizeOrganization strips abbreviation suffixes from a funder name so
// variants of the same organization collapse to one canonical string before
// identifier derivation. The order matters: the parenthetical is removed
// first, then the comma-abbreviation suffix, then whitespace is collapsed.
// Empty input or an empty result yields ok=false.
func NormalizeOrganization(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	name = trailingParenthetical.ReplaceAllString(name, "")
	name = trailingAbbreviation.ReplaceAllString(name, "")
	name = CollapseSpaces(name)
	if name == "" {
		return "", false
	}
	return name, true
}

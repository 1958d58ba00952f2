package helpers

import (
	"regexp"
	"strings"
)

// Entries look like "Smith, J. (57190184000)"; trailing text after the
// numeric id is ignored.
var fullNameEntry = regexp.MustCompile(`^(.+?)\s*\((\d+)\)`)

// ParseAuthorFullNames parses a semicolon-separated author full-names field
// into a numeric-id to full-name map. Entries that do not match the
// "Name (id)" shape are skipped.
func ParseAuthorFullNames(s string) map[string]string {
	idToName := make(map[string]string)
	s = strings.TrimSpace(s)
	if s == "" {
		return idToName
	}
	for _, entry := range strings.Split(s, ";") {
		m := fullNameEntry.FindStringSubmatch(strings.TrimSpace(entry))
		if m == nil {
			continue
		}
		idToName[strings.TrimSpace(m[2])] = strings.TrimSpace(m[1])
	}
	return idToName
}

package helpers

import "strings"

// ValidLiteral reports whether a raw cell value is usable as an RDF
// literal. Whitespace is trimmed; empty and NaN-like markers are rejected.
// The returned string keeps the original case of the trimmed value.
//
// Absent values must produce no triple at all, so callers gate every
// literal emission on the second return value.
func ValidLiteral(value string) (string, bool) {
	s := strings.TrimSpace(value)
	switch strings.ToLower(s) {
	case "", "nan":
		return "", false
	}
	return s, true
}

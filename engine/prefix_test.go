package engine

import (
	"testing"

	"github.com/scholarly-metadata/rdfmap/rdf"
)

func TestPrefixResolver(t *testing.T) {
	resolver := NewPrefixResolver(map[string]string{
		"schema": "http://schema.org/",
		"skos":   "http://www.w3.org/2004/02/skos/core#",
	})

	tests := []struct {
		name     string
		token    string
		expected rdf.IRI
	}{
		{
			name:     "known prefix",
			token:    "schema:name",
			expected: "http://schema.org/name",
		},
		{
			name:     "known prefix with hash namespace",
			token:    "skos:prefLabel",
			expected: "http://www.w3.org/2004/02/skos/core#prefLabel",
		},
		{
			name:     "no colon passes through",
			token:    "alreadyAnIRI",
			expected: "alreadyAnIRI",
		},
		{
			name:     "unknown prefix expands under placeholder",
			token:    "foo:Bar",
			expected: "http://unknown.namespace/foo/Bar",
		},
		{
			name:     "only first colon splits",
			token:    "schema:a:b",
			expected: "http://schema.org/a:b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.token)
			if got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

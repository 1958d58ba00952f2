package engine

import (
	"strings"

	"github.com/scholarly-metadata/rdfmap/rdf"
	"github.com/scholarly-metadata/rdfmap/vocab"
)

// PrefixResolver expands prefixed tokens like "schema:name" into full IRIs
// using the configured namespace table.
type PrefixResolver struct {
	namespaces map[string]string
}

// NewPrefixResolver builds a resolver over a prefix-to-namespace map.
func NewPrefixResolver(namespaces map[string]string) *PrefixResolver {
	return &PrefixResolver{namespaces: namespaces}
}

// Resolve expands a token. A token without a colon is treated as already a
// full IRI. An unknown prefix expands under a synthetic placeholder
// namespace instead of failing, so one misconfigured prefix cannot abort a
// run; the resulting URI is well-formed but wrong, which tests can detect.
func (r *PrefixResolver) Resolve(token string) rdf.IRI {
	prefix, local, found := strings.Cut(token, ":")
	if !found {
		return rdf.IRI(token)
	}
	if ns, ok := r.namespaces[prefix]; ok {
		return rdf.IRI(ns + local)
	}
	return rdf.IRI(vocab.UnknownNamespace + prefix + "/" + local)
}

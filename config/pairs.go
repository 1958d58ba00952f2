package config

import "sort"

// NamespacePair is the ordered {prefix, uri} representation editing UIs use
// for the namespace table.
type NamespacePair struct {
	Prefix string `yaml:"prefix" json:"prefix"`
	URI    string `yaml:"uri" json:"uri"`
}

// PairsToNamespaces converts an ordered pair list back to a unique-keyed
// namespace map. Pairs with an empty prefix or URI are dropped; when a
// prefix repeats, the last pair wins.
func PairsToNamespaces(pairs []NamespacePair) map[string]string {
	namespaces := make(map[string]string)
	for _, p := range pairs {
		if p.Prefix == "" || p.URI == "" {
			continue
		}
		namespaces[p.Prefix] = p.URI
	}
	return namespaces
}

// NamespacesToPairs converts a namespace map to a pair list sorted by
// prefix. The map carries no order of its own, so the list order is
// synthesized here to keep round-trips through an editing UI deterministic.
func NamespacesToPairs(namespaces map[string]string) []NamespacePair {
	pairs := make([]NamespacePair, 0, len(namespaces))
	for prefix, uri := range namespaces {
		pairs = append(pairs, NamespacePair{Prefix: prefix, URI: uri})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Prefix < pairs[j].Prefix })
	return pairs
}

package rdf

// Prefix is a namespace binding used by serializers to compact IRIs.
type Prefix struct {
	Prefix    string
	Namespace string
}

// Graph is an append-only, duplicate-suppressing set of triples.
// Insertion order is preserved so serialization is deterministic for
// identical input.
type Graph struct {
	triples  []Triple
	seen     map[string]struct{}
	prefixes []Prefix
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		seen: make(map[string]struct{}),
	}
}

// Add inserts a triple into the graph. It returns false if an identical
// triple is already present.
func (g *Graph) Add(t Triple) bool {
	key := t.Key()
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the graph's triples in insertion order. The returned
// slice is shared with the graph and must not be modified.
func (g *Graph) Triples() []Triple {
	return g.triples
}

// Bind associates a prefix with a namespace for serialization. Rebinding an
// existing prefix replaces the previous namespace.
func (g *Graph) Bind(prefix, namespace string) {
	for i, p := range g.prefixes {
		if p.Prefix == prefix {
			g.prefixes[i].Namespace = namespace
			return
		}
	}
	g.prefixes = append(g.prefixes, Prefix{Prefix: prefix, Namespace: namespace})
}

// Prefixes returns the bound prefixes in binding order.
func (g *Graph) Prefixes() []Prefix {
	return g.prefixes
}

// compact splits an IRI into a bound prefix and local name. The longest
// matching namespace wins; ok is false when no binding applies or the
// remainder is not a safe local name.
func (g *Graph) compact(iri IRI) (prefix, local string, ok bool) {
	s := string(iri)
	best := -1
	for i, p := range g.prefixes {
		if p.Namespace == "" || len(p.Namespace) >= len(s) {
			continue
		}
		if s[:len(p.Namespace)] != p.Namespace {
			continue
		}
		if best == -1 || len(p.Namespace) > len(g.prefixes[best].Namespace) {
			best = i
		}
	}
	if best == -1 {
		return "", "", false
	}
	local = s[len(g.prefixes[best].Namespace):]
	if !isLocalName(local) {
		return "", "", false
	}
	return g.prefixes[best].Prefix, local, true
}

// isLocalName reports whether s is safe to use as the local part of a
// prefixed name in Turtle and RDF/XML output.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case (r >= '0' && r <= '9') || r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

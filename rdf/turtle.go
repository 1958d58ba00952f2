package rdf

import (
	"bufio"
	"io"
	"strings"
)

// turtleSerializer writes Turtle. The same writer backs the "n3" format:
// for the term subset emitted here (IRIs and literals, no paths or
// formulae) the Notation3 rendering is identical.
type turtleSerializer struct {
	name        string
	description string
	extension   string
}

func (s *turtleSerializer) Name() string        { return s.name }
func (s *turtleSerializer) Description() string { return s.description }
func (s *turtleSerializer) Extension() string   { return s.extension }

func (s *turtleSerializer) Serialize(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	for _, p := range g.Prefixes() {
		bw.WriteString("@prefix ")
		bw.WriteString(p.Prefix)
		bw.WriteString(": <")
		bw.WriteString(p.Namespace)
		bw.WriteString("> .\n")
	}
	if len(g.Prefixes()) > 0 && g.Len() > 0 {
		bw.WriteByte('\n')
	}

	// Consecutive triples sharing a subject are grouped with ";".
	triples := g.Triples()
	for i, t := range triples {
		if i > 0 && triples[i-1].Subject == t.Subject {
			bw.WriteString(" ;\n    ")
		} else {
			if i > 0 {
				bw.WriteString(" .\n")
			}
			bw.WriteString(s.term(g, t.Subject))
			bw.WriteByte(' ')
		}
		bw.WriteString(s.predicate(g, t.Predicate))
		bw.WriteByte(' ')
		bw.WriteString(s.object(g, t.Object))
	}
	if len(triples) > 0 {
		bw.WriteString(" .\n")
	}

	return bw.Flush()
}

func (s *turtleSerializer) term(g *Graph, iri IRI) string {
	if prefix, local, ok := g.compact(iri); ok {
		return prefix + ":" + local
	}
	return "<" + string(iri) + ">"
}

func (s *turtleSerializer) predicate(g *Graph, iri IRI) string {
	if iri == IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type") {
		return "a"
	}
	return s.term(g, iri)
}

func (s *turtleSerializer) object(g *Graph, o Term) string {
	switch t := o.(type) {
	case IRI:
		return s.term(g, t)
	case Literal:
		var b strings.Builder
		b.WriteByte('"')
		b.WriteString(escapeLiteral(t.Value))
		b.WriteByte('"')
		if t.Lang != "" {
			b.WriteByte('@')
			b.WriteString(t.Lang)
		} else if t.Datatype != "" {
			b.WriteString("^^")
			b.WriteString(s.term(g, t.Datatype))
		}
		return b.String()
	default:
		return "\"" + escapeLiteral(o.String()) + "\""
	}
}

// escapeLiteral escapes a literal value for Turtle and N-Triples quoting.
func escapeLiteral(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

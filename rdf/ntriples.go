package rdf

import (
	"bufio"
	"io"
)

// ntriplesSerializer writes canonical N-Triples, one statement per line
// with absolute IRIs.
type ntriplesSerializer struct{}

func (s *ntriplesSerializer) Name() string        { return "nt" }
func (s *ntriplesSerializer) Description() string { return "N-Triples" }
func (s *ntriplesSerializer) Extension() string   { return "nt" }

func (s *ntriplesSerializer) Serialize(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)

	for _, t := range g.Triples() {
		bw.WriteByte('<')
		bw.WriteString(string(t.Subject))
		bw.WriteString("> <")
		bw.WriteString(string(t.Predicate))
		bw.WriteString("> ")
		bw.WriteString(s.object(t.Object))
		bw.WriteString(" .\n")
	}

	return bw.Flush()
}

func (s *ntriplesSerializer) object(o Term) string {
	switch t := o.(type) {
	case IRI:
		return "<" + string(t) + ">"
	case Literal:
		out := "\"" + escapeLiteral(t.Value) + "\""
		if t.Lang != "" {
			out += "@" + t.Lang
		} else if t.Datatype != "" {
			out += "^^<" + string(t.Datatype) + ">"
		}
		return out
	default:
		return "\"" + escapeLiteral(o.String()) + "\""
	}
}

package rdf

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// rdfxmlSerializer writes RDF/XML using rdf:Description blocks grouped by
// subject.
type rdfxmlSerializer struct{}

func (s *rdfxmlSerializer) Name() string        { return "xml" }
func (s *rdfxmlSerializer) Description() string { return "RDF/XML" }
func (s *rdfxmlSerializer) Extension() string   { return "rdf" }

const rdfSyntaxNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

func (s *rdfxmlSerializer) Serialize(w io.Writer, g *Graph) error {
	// Group triples by subject, preserving first-seen subject order.
	var subjects []IRI
	bySubject := make(map[IRI][]Triple)
	for _, t := range g.Triples() {
		if _, ok := bySubject[t.Subject]; !ok {
			subjects = append(subjects, t.Subject)
		}
		bySubject[t.Subject] = append(bySubject[t.Subject], t)
	}

	// Assign a prefix to every namespace used by a predicate. Bound graph
	// prefixes are reused; the rest get synthetic ns1, ns2, ... prefixes.
	prefixFor := map[string]string{rdfSyntaxNS: "rdf"}
	for _, p := range g.Prefixes() {
		if p.Namespace == rdfSyntaxNS {
			continue
		}
		if _, ok := prefixFor[p.Namespace]; !ok {
			prefixFor[p.Namespace] = p.Prefix
		}
	}

	var nsOrder []string
	nsUsed := map[string]bool{rdfSyntaxNS: true}
	nsOrder = append(nsOrder, rdfSyntaxNS)
	synthetic := 0
	for _, t := range g.Triples() {
		ns, _, err := splitIRI(t.Predicate)
		if err != nil {
			return err
		}
		if !nsUsed[ns] {
			nsUsed[ns] = true
			nsOrder = append(nsOrder, ns)
		}
		if _, ok := prefixFor[ns]; !ok {
			synthetic++
			prefixFor[ns] = fmt.Sprintf("ns%d", synthetic)
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(xml.Header)
	bw.WriteString("<rdf:RDF")
	for _, ns := range nsOrder {
		bw.WriteString("\n  xmlns:" + prefixFor[ns] + "=\"" + escapeXML(ns) + "\"")
	}
	bw.WriteString(">\n")

	for _, subject := range subjects {
		bw.WriteString("  <rdf:Description rdf:about=\"" + escapeXML(string(subject)) + "\">\n")
		for _, t := range bySubject[subject] {
			ns, local, err := splitIRI(t.Predicate)
			if err != nil {
				return err
			}
			qname := prefixFor[ns] + ":" + local
			switch o := t.Object.(type) {
			case IRI:
				bw.WriteString("    <" + qname + " rdf:resource=\"" + escapeXML(string(o)) + "\"/>\n")
			case Literal:
				bw.WriteString("    <" + qname)
				if o.Lang != "" {
					bw.WriteString(" xml:lang=\"" + o.Lang + "\"")
				} else if o.Datatype != "" {
					bw.WriteString(" rdf:datatype=\"" + escapeXML(string(o.Datatype)) + "\"")
				}
				bw.WriteString(">")
				bw.WriteString(escapeXML(o.Value))
				bw.WriteString("</" + qname + ">\n")
			default:
				return fmt.Errorf("unsupported object term %T", t.Object)
			}
		}
		bw.WriteString("  </rdf:Description>\n")
	}

	bw.WriteString("</rdf:RDF>\n")
	return bw.Flush()
}

// splitIRI splits an IRI at the last "#" or "/" into a namespace part and
// an XML-safe local name.
func splitIRI(iri IRI) (ns, local string, err error) {
	s := string(iri)
	idx := strings.LastIndexAny(s, "#/")
	if idx < 0 || idx == len(s)-1 {
		return "", "", fmt.Errorf("cannot split IRI %q into namespace and local name", s)
	}
	ns, local = s[:idx+1], s[idx+1:]
	if !isXMLName(local) {
		return "", "", fmt.Errorf("IRI %q has no XML-safe local name", s)
	}
	return ns, local, nil
}

func isXMLName(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case (r >= '0' && r <= '9') || r == '-' || r == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return s != ""
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

// Package rdf provides a minimal RDF term model, a duplicate-suppressing
// triple graph, and serializers for common RDF text formats.
package rdf

import (
	"fmt"
	"strings"
)

// Term is an RDF term: an IRI or a literal.
type Term interface {
	// Key returns a stable encoding of the term used for duplicate
	// suppression and equality checks.
	Key() string

	// String returns a human-readable rendering of the term.
	String() string
}

// IRI is an absolute IRI reference.
type IRI string

// Key implements Term.
func (i IRI) Key() string {
	return "<" + string(i) + ">"
}

// String implements Term.
func (i IRI) String() string {
	return string(i)
}

// Literal is an RDF literal, optionally language-tagged or datatyped.
// Lang and Datatype are mutually exclusive; both empty means a plain literal.
type Literal struct {
	Value    string
	Lang     string
	Datatype IRI
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Literal {
	return Literal{Value: value}
}

// NewLangLiteral returns a language-tagged string literal.
func NewLangLiteral(value, lang string) Literal {
	return Literal{Value: value, Lang: lang}
}

// NewTypedLiteral returns a literal with the given datatype IRI.
func NewTypedLiteral(value string, datatype IRI) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// Key implements Term.
func (l Literal) Key() string {
	switch {
	case l.Lang != "":
		return fmt.Sprintf("%q@%s", l.Value, l.Lang)
	case l.Datatype != "":
		return fmt.Sprintf("%q^^<%s>", l.Value, l.Datatype)
	default:
		return fmt.Sprintf("%q", l.Value)
	}
}

// String implements Term.
func (l Literal) String() string {
	return l.Value
}

// Triple is a single RDF statement.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

// Key returns a stable encoding of the triple for duplicate suppression.
func (t Triple) Key() string {
	var b strings.Builder
	b.WriteString(t.Subject.Key())
	b.WriteByte(' ')
	b.WriteString(t.Predicate.Key())
	b.WriteByte(' ')
	b.WriteString(t.Object.Key())
	return b.String()
}

// Package vocab defines IRI constants for the standard vocabularies used
// when building bibliographic graphs.
package vocab

// Base namespace IRIs.
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace    = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace     = "http://www.w3.org/2001/XMLSchema#"
	SKOSNamespace    = "http://www.w3.org/2004/02/skos/core#"
	DCTermsNamespace = "http://purl.org/dc/terms/"
	SchemaNamespace  = "http://schema.org/"
	BiboNamespace    = "http://purl.org/ontology/bibo/"

	// UnknownNamespace is the synthetic base used when a prefixed name
	// references a prefix missing from the namespace table. Expanding under
	// a placeholder instead of failing keeps one misconfigured prefix from
	// aborting a whole run.
	UnknownNamespace = "http://unknown.namespace/"
)

// Core RDF terms.
const (
	RDFType   = RDFNamespace + "type"
	RDFSLabel = RDFSNamespace + "label"
)

// XSD datatype IRIs for typed literals.
const (
	XSDDate    = XSDNamespace + "date"
	XSDGYear   = XSDNamespace + "gYear"
	XSDInteger = XSDNamespace + "integer"
)

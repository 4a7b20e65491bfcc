package rdf

// Core RDF vocabulary.
const (
	NSRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// TypeIRI is the rdf:type predicate linking a resource to its class.
	TypeIRI = NSRDF + "type"
)

// Package rdf provides the triple model shared by all converters.
//
// Terms are modeled as a closed variant with exactly three kinds: IRI
// (URI-reference), blank node, and literal with an optional datatype or
// language tag. Every place where term kind drives behavior switches
// exhaustively over the three kinds.
//
// Decoding is delegated to github.com/knakk/rdf; this package converts the
// decoder's terms into the closed variant and tags parse failures with the
// position of the offending statement.
package rdf

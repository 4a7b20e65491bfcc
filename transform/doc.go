// Package transform converts RDF triple sequences into property-graph
// documents under three strategies.
//
// LPGT (Labeled Property Graph Transformation) produces a single Node vertex
// collection and a single relation edge collection: every distinct resource
// becomes one node, literal-valued statements become node properties keyed by
// the predicate's local name, and resource-valued statements become edges.
//
// RPT (RDF-Topology Preserving Transformation) keeps the RDF structure
// intact: every term, literals included, becomes a node and every statement
// becomes an edge.
//
// PGT (Property Graph Transformation) groups resources into per-class vertex
// collections named after their rdf:type, merges literal statements onto the
// documents and emits one edge collection per object predicate.
//
// Converters hold no shared state between invocations; the identifier lookup
// table built during a run is returned to the caller in the Result, so the
// same process can convert any number of datasets.
//
// Repeated literal predicates on the same subject are merged last-write-wins
// by default, matching the loader this replaces. RDF permits multi-valued
// properties, so the default silently drops earlier values; use
// WithMergePolicy to keep the first value or collect all of them instead.
package transform

package transform

import (
	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

// Collection names of the RPT model.
const (
	RPTTermCollection      = graphs.RPTTermCollection
	RPTStatementCollection = graphs.RPTStatementCollection
)

// KindDatatypeProperty tags statement edges whose object is a literal.
const KindDatatypeProperty = "DatatypeProperty"

// RPT converts a triple sequence into the topology-preserving model: every
// term, literals included, becomes a node in the Term collection, and every
// statement becomes an edge in the Statement collection carrying the full
// predicate IRI. Identical literals (same value, datatype and language) are
// deduplicated into one node.
func RPT(triples []rdf.Triple, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if err := validateAll(triples); err != nil {
		return nil, err
	}

	b := newNodeBuilder(o)
	for _, t := range triples {
		b.ensure(t.Subject, RPTTermCollection)
		obj := b.ensure(t.Object, RPTTermCollection)
		if t.Object.Kind == rdf.TermLiteral && obj.Properties == nil {
			obj.Properties = literalProperties(t.Object)
		}
	}

	relations := make([]graphs.Relation, 0, len(triples))
	for _, t := range triples {
		kind := graphs.KindObjectProperty
		if t.Object.Kind == rdf.TermLiteral {
			kind = KindDatatypeProperty
		}
		relations = append(relations, graphs.Relation{
			From:           graphs.NodeRef{Collection: RPTTermCollection, Key: b.key(t.Subject)},
			To:             graphs.NodeRef{Collection: RPTTermCollection, Key: b.key(t.Object)},
			Collection:     RPTStatementCollection,
			Predicate:      t.Predicate.Value,
			PredicateLabel: predicateLabel(t),
			Kind:           kind,
		})
	}

	doc := &graphs.Document{
		Model:     graphs.ModelRPT,
		Nodes:     b.build(),
		Relations: relations,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &Result{Document: doc, Keys: b.keyTable(), Warnings: b.warnings}, nil
}

func literalProperties(term rdf.Term) map[string]interface{} {
	props := map[string]interface{}{"value": term.Native()}
	if term.Datatype != "" {
		props["datatype"] = term.Datatype
	}
	if term.Language != "" {
		props["language"] = term.Language
	}
	return props
}

package transform

import (
	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

// Collection names of the PGT model that are not derived from the data.
const (
	PGTClassCollection    = "Class"
	PGTResourceCollection = "Resource"
	PGTTypeCollection     = "type"
)

// PGT converts a triple sequence into the property-graph model: resources
// are grouped into vertex collections named after the local name of their
// rdf:type (untyped resources fall into Resource), classes referenced by
// rdf:type statements form the Class collection, literal statements merge
// onto the owning document, and each object predicate gets its own edge
// collection named after the predicate's local name. rdf:type statements
// become edges in the type collection.
func PGT(triples []rdf.Triple, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if err := validateAll(triples); err != nil {
		return nil, err
	}

	// Collection assignment needs the full type map up front: a resource's
	// collection depends on statements that may appear anywhere in the input.
	types := make(map[string][]string)
	class := make(map[string]bool)
	for _, t := range triples {
		if t.Predicate.Value != rdf.TypeIRI || !t.Object.IsResource() {
			continue
		}
		id := identity(t.Subject)
		types[id] = append(types[id], t.Object.Value)
		class[identity(t.Object)] = true
	}

	collectionFor := func(term rdf.Term) string {
		id := identity(term)
		if class[id] {
			return PGTClassCollection
		}
		if ts := types[id]; len(ts) > 0 {
			return rdf.LocalName(ts[0])
		}
		return PGTResourceCollection
	}

	b := newNodeBuilder(o)
	for _, t := range triples {
		subj := b.ensure(t.Subject, collectionFor(t.Subject))
		if ts := types[identity(t.Subject)]; len(ts) > 0 && subj.Properties == nil {
			subj.Properties = map[string]interface{}{"types": ts}
		}
		if t.Object.IsResource() {
			b.ensure(t.Object, collectionFor(t.Object))
		}
	}

	var relations []graphs.Relation
	for _, t := range triples {
		if !t.Object.IsResource() {
			b.mergeProperty(b.nodes[identity(t.Subject)], predicateLabel(t), t.Object.Native())
			continue
		}

		collection := predicateLabel(t)
		if t.Predicate.Value == rdf.TypeIRI {
			collection = PGTTypeCollection
		}
		relations = append(relations, graphs.Relation{
			From:           graphs.NodeRef{Collection: collectionFor(t.Subject), Key: b.key(t.Subject)},
			To:             graphs.NodeRef{Collection: collectionFor(t.Object), Key: b.key(t.Object)},
			Collection:     collection,
			Predicate:      t.Predicate.Value,
			PredicateLabel: predicateLabel(t),
			Kind:           graphs.KindObjectProperty,
		})
	}

	doc := &graphs.Document{
		Model:     graphs.ModelPGT,
		Nodes:     b.build(),
		Relations: relations,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &Result{Document: doc, Keys: b.keyTable(), Warnings: b.warnings}, nil
}

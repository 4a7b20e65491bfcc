package transform

import (
	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

// Collection names of the LPGT model: one vertex collection and one edge
// collection, exactly.
const (
	LPGTNodeCollection     = graphs.LPGTNodeCollection
	LPGTRelationCollection = graphs.LPGTRelationCollection
)

// LPGT converts a triple sequence into the labeled-property-graph model.
//
// The first pass materializes a node for every distinct subject and for every
// resource-valued object, so resources that only ever appear as subjects are
// not dropped. The second pass merges literal statements onto the owning node
// as properties keyed by the predicate's local name and turns every
// resource-valued statement into a relation. A predicate used with both
// literal and resource objects contributes to both outputs.
func LPGT(triples []rdf.Triple, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if err := validateAll(triples); err != nil {
		return nil, err
	}

	b := newNodeBuilder(o)
	for _, t := range triples {
		b.ensure(t.Subject, LPGTNodeCollection)
		if t.Object.IsResource() {
			b.ensure(t.Object, LPGTNodeCollection)
		}
	}

	var relations []graphs.Relation
	for _, t := range triples {
		if !t.Object.IsResource() {
			b.mergeProperty(b.nodes[identity(t.Subject)], predicateLabel(t), t.Object.Native())
			continue
		}
		relations = append(relations, graphs.Relation{
			From:           graphs.NodeRef{Collection: LPGTNodeCollection, Key: b.key(t.Subject)},
			To:             graphs.NodeRef{Collection: LPGTNodeCollection, Key: b.key(t.Object)},
			Collection:     LPGTRelationCollection,
			Predicate:      t.Predicate.Value,
			PredicateLabel: predicateLabel(t),
			Kind:           graphs.KindObjectProperty,
		})
	}

	doc := &graphs.Document{
		Model:     graphs.ModelLPGT,
		Nodes:     b.build(),
		Relations: relations,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &Result{Document: doc, Keys: b.keyTable(), Warnings: b.warnings}, nil
}

package graphs

import "fmt"

// Model identifies one of the three RDF-to-property-graph strategies.
type Model string

const (
	// ModelRPT preserves RDF topology: every term becomes a node, every
	// statement an edge.
	ModelRPT Model = "rpt"
	// ModelPGT groups nodes into per-class collections and merges datatype
	// properties onto documents.
	ModelPGT Model = "pgt"
	// ModelLPGT uses a single Node vertex collection and a single relation
	// edge collection.
	ModelLPGT Model = "lpgt"
)

// Models lists the supported strategies in demo order.
var Models = []Model{ModelRPT, ModelPGT, ModelLPGT}

// ParseModel parses a model name as given on the command line.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case ModelRPT, ModelPGT, ModelLPGT:
		return Model(name), nil
	default:
		return "", fmt.Errorf("unknown model %q (want rpt, pgt or lpgt)", name)
	}
}

// GraphName returns the default named-graph definition for a model, e.g.
// foaf_lpgt_graph.
func GraphName(m Model) string {
	return "foaf_" + string(m) + "_graph"
}

// Relation kind tag for resource-valued predicates.
const KindObjectProperty = "ObjectProperty"

// Canonical collection names of the fixed-schema models. PGT collections are
// derived from the data and have no canonical set.
const (
	LPGTNodeCollection     = "Node"
	LPGTRelationCollection = "relation"
	RPTTermCollection      = "Term"
	RPTStatementCollection = "Statement"
)

// CanonicalCollections returns the collection sets a model always defines,
// even when a conversion produced no documents for them. Stores use this to
// keep the fixed schema intact on degenerate inputs.
func CanonicalCollections(m Model) (vertices, edges []string) {
	switch m {
	case ModelRPT:
		return []string{RPTTermCollection}, []string{RPTStatementCollection}
	case ModelLPGT:
		return []string{LPGTNodeCollection}, []string{LPGTRelationCollection}
	default:
		return nil, nil
	}
}

// Node is one vertex document produced by a conversion. Key is the assigned
// identifier, unique within the document; IRI is empty for blank nodes.
// Properties holds merged datatype properties keyed by predicate local name.
type Node struct {
	Key        string
	Collection string
	IRI        string
	Label      string
	Kind       string
	Properties map[string]interface{}
}

// NodeRef points at a node by collection and key.
type NodeRef struct {
	Collection string
	Key        string
}

// String renders the reference in <collection>/<key> form.
func (r NodeRef) String() string {
	return r.Collection + "/" + r.Key
}

// Relation is one edge document produced by a conversion. From and To must
// reference nodes present in the same document.
type Relation struct {
	From           NodeRef
	To             NodeRef
	Collection     string
	Predicate      string
	PredicateLabel string
	Kind           string
	Properties     map[string]interface{}
}

// Document bundles the complete output of one conversion run: the node set
// and the relation list handed to a GraphStore as bulk writes.
type Document struct {
	Model     Model
	Nodes     []Node
	Relations []Relation
}

// NodeCollections returns the distinct vertex collection names in insertion
// order.
func (d *Document) NodeCollections() []string {
	return distinctCollections(len(d.Nodes), func(i int) string { return d.Nodes[i].Collection })
}

// RelationCollections returns the distinct edge collection names in insertion
// order.
func (d *Document) RelationCollections() []string {
	return distinctCollections(len(d.Relations), func(i int) string { return d.Relations[i].Collection })
}

func distinctCollections(n int, name func(int) string) []string {
	seen := make(map[string]bool, n)
	var out []string
	for i := 0; i < n; i++ {
		if c := name(i); !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// Validate checks the document invariants: node keys are unique per
// collection and every relation endpoint resolves to a node in the document.
func (d *Document) Validate() error {
	nodes := make(map[NodeRef]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if n.Key == "" {
			return fmt.Errorf("node for %q has an empty key", n.IRI)
		}
		ref := NodeRef{Collection: n.Collection, Key: n.Key}
		if nodes[ref] {
			return fmt.Errorf("duplicate node key %s", ref)
		}
		nodes[ref] = true
	}

	for i, r := range d.Relations {
		if !nodes[r.From] {
			return fmt.Errorf("relation %d: source %s does not reference a node in the document", i, r.From)
		}
		if !nodes[r.To] {
			return fmt.Errorf("relation %d: target %s does not reference a node in the document", i, r.To)
		}
	}

	return nil
}

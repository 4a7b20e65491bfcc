package transform

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

// Result is the complete output of one conversion run. Keys is the
// identifier lookup table built during the run, mapping each RDF identifier
// to its assigned node key; it is owned by the caller and never shared
// between runs.
type Result struct {
	Document *graphs.Document
	Keys     map[string]string
	Warnings []Warning
}

// Warning records a non-fatal consistency issue found during conversion.
type Warning struct {
	Identifier string
	Message    string
}

// validateAll rejects the whole sequence on the first malformed statement,
// tagged with its position. A conversion either processes the entire set or
// aborts; it never persists a silently-incomplete graph.
func validateAll(triples []rdf.Triple) error {
	for i, t := range triples {
		if err := t.Validate(); err != nil {
			return &rdf.ParseError{Index: i, Err: err}
		}
	}
	return nil
}

// nodeBuilder accumulates the node set for one run. It owns the identifier
// lookup table and hands it back to the caller when the run completes.
type nodeBuilder struct {
	opts     *options
	keys     map[string]string
	nodes    map[string]*graphs.Node
	order    []string
	seq      int
	warnings []Warning
}

func newNodeBuilder(opts *options) *nodeBuilder {
	return &nodeBuilder{
		opts:  opts,
		keys:  make(map[string]string),
		nodes: make(map[string]*graphs.Node),
	}
}

// ensure returns the node for the resource term, creating it on first sight.
// The first classification of an identifier wins; seeing the same identifier
// again with a different kind is logged as a warning, not an error, since
// well-formed RDF cannot produce the conflict.
func (b *nodeBuilder) ensure(term rdf.Term, collection string) *graphs.Node {
	id := identity(term)
	if n, ok := b.nodes[id]; ok {
		if n.Kind != term.Kind.String() {
			b.warn(id, fmt.Sprintf("seen as both %s and %s; keeping %s", n.Kind, term.Kind, n.Kind))
		}
		return n
	}

	n := &graphs.Node{
		Key:        b.assignKey(id),
		Collection: collection,
		Label:      nodeLabel(term),
		Kind:       term.Kind.String(),
	}
	if term.Kind == rdf.TermIRI {
		n.IRI = term.Value
	}
	b.nodes[id] = n
	b.order = append(b.order, id)
	return n
}

// key returns the assigned key for an already-ensured resource.
func (b *nodeBuilder) key(term rdf.Term) string {
	return b.keys[identity(term)]
}

func (b *nodeBuilder) assignKey(id string) string {
	var key string
	if b.opts.stableKeys {
		key = uuid.NewSHA1(uuid.NameSpaceURL, []byte(id)).String()
	} else {
		b.seq++
		key = fmt.Sprintf("n%d", b.seq)
	}
	b.keys[id] = key
	return key
}

// mergeProperty attaches a literal value to the node under the configured
// collision policy.
func (b *nodeBuilder) mergeProperty(n *graphs.Node, key string, value interface{}) {
	if n.Properties == nil {
		n.Properties = make(map[string]interface{})
	}

	prev, exists := n.Properties[key]
	switch b.opts.policy {
	case FirstWins:
		if exists {
			return
		}
		n.Properties[key] = value
	case Collect:
		if !exists {
			n.Properties[key] = value
			return
		}
		if vs, ok := prev.([]interface{}); ok {
			n.Properties[key] = append(vs, value)
			return
		}
		n.Properties[key] = []interface{}{prev, value}
	default: // LastWins
		n.Properties[key] = value
	}
}

func (b *nodeBuilder) warn(id, msg string) {
	b.warnings = append(b.warnings, Warning{Identifier: id, Message: msg})
	b.opts.logger.Warn("node kind conflict",
		zap.String("identifier", id),
		zap.String("detail", msg))
}

// build returns the accumulated nodes in first-appearance order.
func (b *nodeBuilder) build() []graphs.Node {
	nodes := make([]graphs.Node, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, *b.nodes[id])
	}
	return nodes
}

// keyTable returns a copy of the identifier lookup table for the Result.
func (b *nodeBuilder) keyTable() map[string]string {
	keys := make(map[string]string, len(b.keys))
	for id, key := range b.keys {
		keys[id] = key
	}
	return keys
}

// identity is the lookup-table key of a term. Blank node labels are prefixed
// so a blank node can never alias an IRI with the same spelling.
func identity(term rdf.Term) string {
	switch term.Kind {
	case rdf.TermBlank:
		return "_:" + term.Value
	case rdf.TermLiteral:
		// Literals are deduplicated by value, datatype and language (RPT
		// materializes them as nodes).
		return "lit:" + term.Value + "\x00" + term.Datatype + "\x00" + term.Language
	default:
		return term.Value
	}
}

func nodeLabel(term rdf.Term) string {
	switch term.Kind {
	case rdf.TermIRI:
		return rdf.LocalName(term.Value)
	case rdf.TermBlank, rdf.TermLiteral:
		return term.Value
	default:
		return term.Value
	}
}

func predicateLabel(t rdf.Triple) string {
	return rdf.LocalName(t.Predicate.Value)
}

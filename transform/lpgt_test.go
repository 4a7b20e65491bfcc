package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

const (
	exNS   = "http://example.org/people/"
	foafNS = "http://xmlns.com/foaf/0.1/"
)

func iri(s string) rdf.Term { return rdf.NewIRI(s) }

func spo(s, p string, o rdf.Term) rdf.Triple {
	return rdf.Triple{Subject: rdf.NewIRI(s), Predicate: rdf.NewIRI(p), Object: o}
}

// aliceAndBob is the running example used across the converter tests: two
// typed persons, literal properties with mixed datatypes and one friendship.
func aliceAndBob() []rdf.Triple {
	alice := exNS + "alice"
	bob := exNS + "bob"
	return []rdf.Triple{
		spo(alice, rdf.TypeIRI, iri(foafNS+"Person")),
		spo(alice, foafNS+"name", rdf.NewLiteral("Alice")),
		spo(alice, foafNS+"age", rdf.NewTypedLiteral("30", rdf.XSDInteger)),
		spo(alice, foafNS+"knows", iri(bob)),
		spo(bob, rdf.TypeIRI, iri(foafNS+"Person")),
		spo(bob, foafNS+"name", rdf.NewLiteral("Bob")),
	}
}

func findNode(t *testing.T, doc *graphs.Document, iri string) graphs.Node {
	t.Helper()
	for _, n := range doc.Nodes {
		if n.IRI == iri {
			return n
		}
	}
	t.Fatalf("no node for %s in document", iri)
	return graphs.Node{}
}

func TestLPGT(t *testing.T) {
	result, err := LPGT(aliceAndBob())
	require.NoError(t, err)
	doc := result.Document

	assert.Equal(t, graphs.ModelLPGT, doc.Model)
	// alice, bob and the Person class resource.
	assert.Len(t, doc.Nodes, 3)
	// Two type statements and one knows statement.
	assert.Len(t, doc.Relations, 3)

	assert.Equal(t, []string{LPGTNodeCollection}, doc.NodeCollections())
	assert.Equal(t, []string{LPGTRelationCollection}, doc.RelationCollections())

	alice := findNode(t, doc, exNS+"alice")
	assert.Equal(t, "alice", alice.Label)
	assert.Equal(t, "URIRef", alice.Kind)
	assert.Equal(t, "Alice", alice.Properties["name"])
	assert.Equal(t, int64(30), alice.Properties["age"])

	bob := findNode(t, doc, exNS+"bob")
	assert.Equal(t, "Bob", bob.Properties["name"])

	var knows *graphs.Relation
	for i, r := range doc.Relations {
		if r.PredicateLabel == "knows" {
			knows = &doc.Relations[i]
		}
	}
	require.NotNil(t, knows, "expected a knows relation")
	assert.Equal(t, alice.Key, knows.From.Key)
	assert.Equal(t, bob.Key, knows.To.Key)
	assert.Equal(t, foafNS+"knows", knows.Predicate)
	assert.Equal(t, graphs.KindObjectProperty, knows.Kind)
	assert.Equal(t, LPGTNodeCollection, knows.From.Collection)
}

func TestLPGTKeyTable(t *testing.T) {
	result, err := LPGT(aliceAndBob())
	require.NoError(t, err)

	alice := findNode(t, result.Document, exNS+"alice")
	assert.Equal(t, alice.Key, result.Keys[exNS+"alice"])
	assert.Len(t, result.Keys, 3)
}

func TestLPGTRepeatedLiteralLastWins(t *testing.T) {
	alice := exNS + "alice"
	triples := []rdf.Triple{
		spo(alice, foafNS+"age", rdf.NewTypedLiteral("30", rdf.XSDInteger)),
		spo(alice, foafNS+"age", rdf.NewTypedLiteral("31", rdf.XSDInteger)),
	}

	result, err := LPGT(triples)
	require.NoError(t, err)

	node := findNode(t, result.Document, alice)
	assert.Equal(t, int64(31), node.Properties["age"])
}

func TestLPGTRepeatedLiteralFirstWins(t *testing.T) {
	alice := exNS + "alice"
	triples := []rdf.Triple{
		spo(alice, foafNS+"age", rdf.NewTypedLiteral("30", rdf.XSDInteger)),
		spo(alice, foafNS+"age", rdf.NewTypedLiteral("31", rdf.XSDInteger)),
	}

	result, err := LPGT(triples, WithMergePolicy(FirstWins))
	require.NoError(t, err)

	node := findNode(t, result.Document, alice)
	assert.Equal(t, int64(30), node.Properties["age"])
}

func TestLPGTRepeatedLiteralCollect(t *testing.T) {
	alice := exNS + "alice"
	triples := []rdf.Triple{
		spo(alice, foafNS+"interest", rdf.NewLiteral("graphs")),
		spo(alice, foafNS+"interest", rdf.NewLiteral("semantics")),
		spo(alice, foafNS+"interest", rdf.NewLiteral("golang")),
	}

	result, err := LPGT(triples, WithMergePolicy(Collect))
	require.NoError(t, err)

	node := findNode(t, result.Document, alice)
	assert.Equal(t, []interface{}{"graphs", "semantics", "golang"}, node.Properties["interest"])
}

func TestLPGTSubjectOnlyResource(t *testing.T) {
	// A resource that never appears as an object still becomes a node.
	triples := []rdf.Triple{
		spo(exNS+"carol", foafNS+"name", rdf.NewLiteral("Carol")),
	}

	result, err := LPGT(triples)
	require.NoError(t, err)

	require.Len(t, result.Document.Nodes, 1)
	assert.Empty(t, result.Document.Relations)
	assert.Equal(t, "Carol", result.Document.Nodes[0].Properties["name"])
}

func TestLPGTMixedObjectKinds(t *testing.T) {
	// The same predicate used with a literal and a resource object
	// contributes both a property and a relation.
	alice := exNS + "alice"
	triples := []rdf.Triple{
		spo(alice, foafNS+"interest", rdf.NewLiteral("semantic web")),
		spo(alice, foafNS+"interest", iri("http://dbpedia.org/resource/Semantic_Web")),
	}

	result, err := LPGT(triples)
	require.NoError(t, err)
	doc := result.Document

	node := findNode(t, doc, alice)
	assert.Equal(t, "semantic web", node.Properties["interest"])
	require.Len(t, doc.Relations, 1)
	assert.Equal(t, "interest", doc.Relations[0].PredicateLabel)
}

func TestLPGTBlankNodes(t *testing.T) {
	triples := []rdf.Triple{
		{
			Subject:   rdf.NewBlank("anon1"),
			Predicate: rdf.NewIRI(foafNS + "knows"),
			Object:    iri(exNS + "alice"),
		},
	}

	result, err := LPGT(triples)
	require.NoError(t, err)
	doc := result.Document

	require.Len(t, doc.Nodes, 2)
	var blank *graphs.Node
	for i, n := range doc.Nodes {
		if n.Kind == "BNode" {
			blank = &doc.Nodes[i]
		}
	}
	require.NotNil(t, blank, "expected a blank node")
	assert.Empty(t, blank.IRI)
	assert.Equal(t, "anon1", blank.Label)

	require.Len(t, doc.Relations, 1)
	assert.Equal(t, blank.Key, doc.Relations[0].From.Key)
}

func TestLPGTKindConflictKeepsFirstClassification(t *testing.T) {
	// An IRI spelled like a blank-node identity collides with the blank
	// node "shared" in the lookup table. Well-formed RDF cannot produce
	// this, so it is a warning, not an error.
	name := rdf.NewIRI(foafNS + "name")
	triples := []rdf.Triple{
		{Subject: rdf.NewIRI("_:shared"), Predicate: name, Object: rdf.NewLiteral("First")},
		{Subject: rdf.NewBlank("shared"), Predicate: name, Object: rdf.NewLiteral("Second")},
	}

	result, err := LPGT(triples)
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "_:shared", result.Warnings[0].Identifier)
	assert.Contains(t, result.Warnings[0].Message, "URIRef")
	assert.Contains(t, result.Warnings[0].Message, "BNode")

	// Both spellings resolve to one node carrying the first classification.
	require.Len(t, result.Document.Nodes, 1)
	node := result.Document.Nodes[0]
	assert.Equal(t, "URIRef", node.Kind)
	assert.Equal(t, "Second", node.Properties["name"])
}

func TestLPGTStableKeysDeterministic(t *testing.T) {
	first, err := LPGT(aliceAndBob(), WithStableKeys(true))
	require.NoError(t, err)
	second, err := LPGT(aliceAndBob(), WithStableKeys(true))
	require.NoError(t, err)

	assert.Equal(t, first.Document, second.Document)
	assert.Equal(t, first.Keys, second.Keys)
}

func TestLPGTSequentialKeysPerRun(t *testing.T) {
	result, err := LPGT(aliceAndBob())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range result.Document.Nodes {
		assert.False(t, seen[n.Key], "duplicate key %s", n.Key)
		seen[n.Key] = true
	}
}

func TestLPGTMalformedTriple(t *testing.T) {
	triples := []rdf.Triple{
		aliceAndBob()[0],
		{
			Subject:   rdf.NewLiteral("not a resource"),
			Predicate: rdf.NewIRI(foafNS + "name"),
			Object:    rdf.NewLiteral("x"),
		},
	}

	_, err := LPGT(triples)
	require.Error(t, err)
	var perr *rdf.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Index)
}

func TestLPGTEmptyInput(t *testing.T) {
	result, err := LPGT(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Document.Nodes)
	assert.Empty(t, result.Document.Relations)
}

func TestLPGTDocumentValidates(t *testing.T) {
	result, err := LPGT(aliceAndBob())
	require.NoError(t, err)
	require.NoError(t, result.Document.Validate())

	for _, r := range result.Document.Relations {
		assert.NotEmpty(t, r.From.Key)
		assert.NotEmpty(t, r.To.Key)
	}
}

func TestParsePolicy(t *testing.T) {
	for name, want := range map[string]Policy{
		"last-wins":  LastWins,
		"first-wins": FirstWins,
		"collect":    Collect,
	} {
		got, err := ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParsePolicy("newest")
	assert.Error(t, err)
}

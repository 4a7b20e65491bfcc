package foaf

import "github.com/semlab/foafgraph/graphs"

// Query is one demonstration query together with the description printed
// above its results.
type Query struct {
	Name        string
	Description string
	Text        string
	Params      map[string]interface{}
}

// DemoQueries returns the AQL demonstration set for a stored model. The
// queries reference the collections and document fields each converter
// produces, so they only make sense against the matching database.
func DemoQueries(model graphs.Model) []Query {
	switch model {
	case graphs.ModelRPT:
		return rptQueries
	case graphs.ModelPGT:
		return pgtQueries
	case graphs.ModelLPGT:
		return lpgtQueries
	default:
		return nil
	}
}

var rptQueries = []Query{
	{
		Name:        "statements",
		Description: "Every RDF statement preserved as an edge",
		Text: `FOR s IN Statement
	LIMIT 10
	RETURN {subject: s._from, predicate: s.predicate, object: s._to}`,
	},
	{
		Name:        "persons",
		Description: "All FOAF Person entities",
		Text: `FOR s IN Statement
	FILTER s.predicate == @type
	FOR t IN Term
	FILTER t._id == s._to AND t._uri == @person
	RETURN DISTINCT s._from`,
		Params: map[string]interface{}{
			"type":   "http://www.w3.org/1999/02/22-rdf-syntax-ns#type",
			"person": Person,
		},
	},
	{
		Name:        "names",
		Description: "People and their names",
		Text: `FOR s IN Statement
	FILTER s.predicate == @name
	FOR v IN Term
	FILTER v._id == s._to
	RETURN {person: s._from, name: v.value}`,
		Params: map[string]interface{}{"name": Name},
	},
	{
		Name:        "friendships",
		Description: "Friendship connections (knows statements)",
		Text: `FOR s IN Statement
	FILTER s.predicate == @knows
	LIMIT 10
	RETURN {person1: s._from, person2: s._to, relationship: "knows"}`,
		Params: map[string]interface{}{"knows": Knows},
	},
}

var pgtQueries = []Query{
	{
		Name:        "persons",
		Description: "Person documents with their merged properties",
		Text: `FOR person IN Person
	LIMIT 10
	RETURN {key: person._key, name: person.name, age: person.age, title: person.title}`,
	},
	{
		Name:        "age-range",
		Description: "People aged 25-35",
		Text: `FOR person IN Person
	FILTER person.age != null AND person.age >= 25 AND person.age <= 35
	SORT person.age
	RETURN {name: person.name, age: person.age, title: person.title}`,
	},
	{
		Name:        "connections",
		Description: "Social network connections with person details",
		Text: `FOR edge IN knows
	FOR person1 IN Person
	FILTER person1._id == edge._from
	FOR person2 IN Person
	FILTER person2._id == edge._to
	LIMIT 10
	RETURN {person1: person1.name, person2: person2.name, relationship: "knows"}`,
	},
	{
		Name:        "types",
		Description: "Entity counts by class",
		Text: `FOR t IN type
	FOR c IN Class
	FILTER t._to == c._id
	COLLECT class = c._uri WITH COUNT INTO count
	SORT count DESC
	RETURN {type: class, count: count}`,
	},
}

var lpgtQueries = []Query{
	{
		Name:        "persons",
		Description: "Nodes with localname properties",
		Text: `FOR node IN Node
	FILTER node._rdftype == "URIRef" AND node.name != null
	LIMIT 10
	RETURN {key: node._key, name: node.name, age: node.age}`,
	},
	{
		Name:        "age-range",
		Description: "People aged 25-35",
		Text: `FOR node IN Node
	FILTER node.age != null AND node.age >= 25 AND node.age <= 35
	SORT node.age
	RETURN {name: node.name, age: node.age}`,
	},
	{
		Name:        "friendships",
		Description: "Friendship connections through the unified edge collection",
		Text: `FOR r IN relation
	FILTER r.predicate_label == "knows"
	FOR p1 IN Node
	FILTER p1._id == r._from
	FOR p2 IN Node
	FILTER p2._id == r._to
	LIMIT 10
	RETURN {person1: p1.name, person2: p2.name}`,
	},
	{
		Name:        "friends-of-friends",
		Description: "2-hop traversal over the named graph",
		Text: `FOR node IN Node
	FILTER node.name != null
	LIMIT 1
	FOR v, e, p IN 2..2 OUTBOUND node._id GRAPH @graph
	FILTER e.predicate_label == "knows"
	LIMIT 10
	RETURN {start: node.name, friend_of_friend: v.name, hops: LENGTH(p.edges)}`,
		Params: map[string]interface{}{"graph": graphs.GraphName(graphs.ModelLPGT)},
	},
	{
		Name:        "relation-kinds",
		Description: "Relation counts by predicate label",
		Text: `FOR r IN relation
	COLLECT label = r.predicate_label WITH COUNT INTO count
	SORT count DESC
	RETURN {predicate: label, count: count}`,
	},
}

// CypherQueries returns the demonstration set for the Neo4j copy of the
// LPGT model.
var CypherQueries = []Query{
	{
		Name:        "persons",
		Description: "Nodes with localname properties",
		Text:        `MATCH (n:Node) WHERE n.name IS NOT NULL RETURN n.key AS key, n.name AS name, n.age AS age LIMIT 10`,
	},
	{
		Name:        "friendships",
		Description: "Friendship connections",
		Text:        `MATCH (a:Node)-[r:RELATION {predicate_label: "knows"}]->(b:Node) RETURN a.name AS person1, b.name AS person2 LIMIT 10`,
	},
	{
		Name:        "friends-of-friends",
		Description: "2-hop traversal",
		Text: `MATCH (a:Node)-[:RELATION {predicate_label: "knows"}]->()-[:RELATION {predicate_label: "knows"}]->(c:Node)
WHERE a.name IS NOT NULL AND a <> c
RETURN a.name AS start, c.name AS friend_of_friend LIMIT 10`,
	},
}

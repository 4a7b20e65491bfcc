package arango

import (
	"context"
	"fmt"
	"sort"

	driver "github.com/arangodb/go-driver"

	"github.com/semlab/foafgraph/graphs"
)

// ReplaceGraph persists a converted document into the model database. The
// database is recreated from scratch, node collections are bulk-imported
// before the relation collections so no edge can reference a missing vertex,
// and a named graph is registered over the edge definitions found in the
// document.
func (s *Store) ReplaceGraph(ctx context.Context, doc *graphs.Document, options ...graphs.Option) error {
	opts := graphs.NewOptions()
	for _, opt := range options {
		opt(opts)
	}

	if doc.Model != s.model {
		return fmt.Errorf("%w: store holds %s, document is %s", ErrModelMismatch, s.model, doc.Model)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid graph document: %w", err)
	}

	db, err := s.recreateDatabase(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	vertexNames, edgeNames := collectionNames(doc)
	vertexCols, err := s.createCollections(ctx, db, vertexNames, driver.CollectionTypeDocument)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	edgeCols, err := s.createCollections(ctx, db, edgeNames, driver.CollectionTypeEdge)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if err := s.insertNodes(ctx, vertexCols, doc.Nodes, opts.BatchSize); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	if err := s.insertRelations(ctx, edgeCols, doc.Relations, opts.BatchSize); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	if opts.SkipGraphDefinition {
		return nil
	}

	name := opts.GraphName
	if name == "" {
		name = graphs.GraphName(doc.Model)
	}
	if err := s.createGraphDefinition(ctx, db, name, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return nil
}

// collectionNames merges the document's collections with the model's
// canonical ones, so degenerate inputs (no relations, or no triples at all)
// still produce the model's fixed schema.
func collectionNames(doc *graphs.Document) (vertices, edges []string) {
	vertices = doc.NodeCollections()
	edges = doc.RelationCollections()
	cv, ce := graphs.CanonicalCollections(doc.Model)
	return appendMissing(vertices, cv), appendMissing(edges, ce)
}

func appendMissing(names, extra []string) []string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range extra {
		if !seen[n] {
			names = append(names, n)
		}
	}
	return names
}

func (s *Store) createCollections(ctx context.Context, db driver.Database, names []string, colType driver.CollectionType) (map[string]driver.Collection, error) {
	cols := make(map[string]driver.Collection, len(names))
	for _, name := range names {
		col, err := db.CreateCollection(ctx, name, &driver.CreateCollectionOptions{Type: colType})
		if err != nil {
			return nil, fmt.Errorf("create collection %s: %w", name, err)
		}
		cols[name] = col
	}
	return cols, nil
}

func (s *Store) insertNodes(ctx context.Context, cols map[string]driver.Collection, nodes []graphs.Node, batchSize int) error {
	batches := make(map[string][]interface{})
	for _, n := range nodes {
		batches[n.Collection] = append(batches[n.Collection], nodeDocument(n))
	}
	for name, docs := range batches {
		if err := bulkInsert(ctx, cols[name], docs, batchSize); err != nil {
			return fmt.Errorf("insert nodes into %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) insertRelations(ctx context.Context, cols map[string]driver.Collection, relations []graphs.Relation, batchSize int) error {
	batches := make(map[string][]interface{})
	for _, r := range relations {
		batches[r.Collection] = append(batches[r.Collection], relationDocument(r))
	}
	for name, docs := range batches {
		if err := bulkInsert(ctx, cols[name], docs, batchSize); err != nil {
			return fmt.Errorf("insert relations into %s: %w", name, err)
		}
	}
	return nil
}

func bulkInsert(ctx context.Context, col driver.Collection, docs []interface{}, batchSize int) error {
	if batchSize <= 0 {
		batchSize = len(docs)
	}
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		_, errs, err := col.CreateDocuments(ctx, docs[start:end])
		if err != nil {
			return err
		}
		if err := errs.FirstNonNil(); err != nil {
			return err
		}
	}
	return nil
}

// createGraphDefinition registers the named graph. The edge definitions are
// derived from the document: for each edge collection, the set of vertex
// collections its relations actually connect.
func (s *Store) createGraphDefinition(ctx context.Context, db driver.Database, name string, doc *graphs.Document) error {
	exists, err := db.GraphExists(ctx, name)
	if err != nil {
		return fmt.Errorf("check graph %s: %w", name, err)
	}
	if exists {
		g, err := db.Graph(ctx, name)
		if err != nil {
			return fmt.Errorf("open graph %s: %w", name, err)
		}
		if err := g.Remove(ctx); err != nil {
			return fmt.Errorf("drop graph %s: %w", name, err)
		}
	}

	_, err = db.CreateGraphV2(ctx, name, &driver.CreateGraphOptions{
		EdgeDefinitions: edgeDefinitions(doc),
	})
	if err != nil {
		return fmt.Errorf("create graph %s: %w", name, err)
	}
	return nil
}

func edgeDefinitions(doc *graphs.Document) []driver.EdgeDefinition {
	type endpoints struct {
		from map[string]bool
		to   map[string]bool
	}
	byCollection := make(map[string]*endpoints)
	var order []string

	for _, r := range doc.Relations {
		ep, ok := byCollection[r.Collection]
		if !ok {
			ep = &endpoints{from: make(map[string]bool), to: make(map[string]bool)}
			byCollection[r.Collection] = ep
			order = append(order, r.Collection)
		}
		ep.from[r.From.Collection] = true
		ep.to[r.To.Collection] = true
	}

	defs := make([]driver.EdgeDefinition, 0, len(order))
	for _, name := range order {
		ep := byCollection[name]
		defs = append(defs, driver.EdgeDefinition{
			Collection: name,
			From:       sortedKeys(ep.from),
			To:         sortedKeys(ep.to),
		})
	}

	// The fixed-schema models register their canonical edge definitions even
	// when no relation was produced, so the named graph always has the same
	// shape.
	cv, ce := graphs.CanonicalCollections(doc.Model)
	for _, name := range ce {
		if _, ok := byCollection[name]; !ok {
			defs = append(defs, driver.EdgeDefinition{Collection: name, From: cv, To: cv})
		}
	}
	return defs
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	// Deterministic definitions make re-runs comparable.
	sort.Strings(keys)
	return keys
}

// nodeDocument flattens a node into the ArangoDB document shape: merged
// datatype properties at the top level plus the _uri/_label/_rdftype
// metadata fields.
func nodeDocument(n graphs.Node) map[string]interface{} {
	doc := make(map[string]interface{}, len(n.Properties)+4)
	for k, v := range n.Properties {
		doc[k] = v
	}
	doc["_key"] = n.Key
	doc["_label"] = n.Label
	doc["_rdftype"] = n.Kind
	if n.IRI != "" {
		doc["_uri"] = n.IRI
	}
	return doc
}

// relationDocument flattens a relation into the ArangoDB edge shape.
func relationDocument(r graphs.Relation) map[string]interface{} {
	doc := make(map[string]interface{}, len(r.Properties)+5)
	for k, v := range r.Properties {
		doc[k] = v
	}
	doc["_from"] = r.From.String()
	doc["_to"] = r.To.String()
	doc["predicate"] = r.Predicate
	doc["predicate_label"] = r.PredicateLabel
	doc["_rdftype"] = r.Kind
	return doc
}

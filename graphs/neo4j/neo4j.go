package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/semlab/foafgraph/graphs"
)

var (
	ErrConnectionFailed  = fmt.Errorf("failed to connect to Neo4j")
	ErrUnsupportedModel  = fmt.Errorf("neo4j store only holds the lpgt model")
	ErrPersistenceFailed = fmt.Errorf("failed to persist graph document")
)

// Store is a Neo4j graph store holding the LPGT model.
type Store struct {
	driver neo4j.DriverWithContext
	opts   *options
}

var _ graphs.GraphStore = (*Store)(nil)

// New creates a Neo4j graph store and verifies connectivity.
func New(ctx context.Context, opts ...Option) (*Store, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	driver, err := neo4j.NewDriverWithContext(
		options.connectionURL,
		neo4j.BasicAuth(options.username, options.password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return &Store{driver: driver, opts: options}, nil
}

// Close closes the Neo4j driver connection.
func (s *Store) Close() error {
	return s.driver.Close(context.Background())
}

func (s *Store) session(ctx context.Context) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.opts.database})
}

// ReplaceGraph persists an LPGT document. Prior nodes carrying the store's
// label are detached and deleted first, then nodes and relations are
// imported in UNWIND batches.
func (s *Store) ReplaceGraph(ctx context.Context, doc *graphs.Document, options ...graphs.Option) error {
	opts := graphs.NewOptions()
	for _, opt := range options {
		opt(opts)
	}

	if doc.Model != graphs.ModelLPGT {
		return fmt.Errorf("%w: got %s", ErrUnsupportedModel, doc.Model)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid graph document: %w", err)
	}

	session := s.session(ctx)
	defer session.Close(ctx)

	clearQuery := fmt.Sprintf("MATCH (n:%s) DETACH DELETE n", s.opts.nodeLabel)
	if _, err := session.Run(ctx, clearQuery, nil); err != nil {
		return fmt.Errorf("%w: clear prior graph: %v", ErrPersistenceFailed, err)
	}

	createNodes := fmt.Sprintf(`
		UNWIND $nodes AS node
		CREATE (n:%s {key: node.key})
		SET n += node.props
	`, s.opts.nodeLabel)
	for _, batch := range batchNodes(doc.Nodes, opts.BatchSize) {
		params := map[string]interface{}{"nodes": batch}
		if _, err := session.Run(ctx, createNodes, params); err != nil {
			return fmt.Errorf("%w: insert nodes: %v", ErrPersistenceFailed, err)
		}
	}

	createRels := fmt.Sprintf(`
		UNWIND $rels AS rel
		MATCH (a:%s {key: rel.from})
		MATCH (b:%s {key: rel.to})
		CREATE (a)-[r:%s {predicate: rel.predicate, predicate_label: rel.label, kind: rel.kind}]->(b)
	`, s.opts.nodeLabel, s.opts.nodeLabel, s.opts.relationType)
	for _, batch := range batchRelations(doc.Relations, opts.BatchSize) {
		params := map[string]interface{}{"rels": batch}
		if _, err := session.Run(ctx, createRels, params); err != nil {
			return fmt.Errorf("%w: insert relations: %v", ErrPersistenceFailed, err)
		}
	}

	return nil
}

// Query executes a Cypher query and returns the result rows.
func (s *Store) Query(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	session := s.session(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	var rows []map[string]interface{}
	for result.Next(ctx) {
		rows = append(rows, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("read query result: %w", err)
	}
	return rows, nil
}

// Stats reports counts for the stored node label and relationship type.
func (s *Store) Stats(ctx context.Context) (*graphs.Stats, error) {
	nodeCount, err := s.count(ctx, fmt.Sprintf("MATCH (n:%s) RETURN count(n) AS c", s.opts.nodeLabel))
	if err != nil {
		return nil, err
	}
	relCount, err := s.count(ctx, fmt.Sprintf("MATCH (:%s)-[r:%s]->(:%s) RETURN count(r) AS c",
		s.opts.nodeLabel, s.opts.relationType, s.opts.nodeLabel))
	if err != nil {
		return nil, err
	}

	return &graphs.Stats{
		Database: s.opts.database,
		Collections: []graphs.CollectionStats{
			{Name: s.opts.nodeLabel, Count: nodeCount},
			{Name: s.opts.relationType, Count: relCount, Edge: true},
		},
	}, nil
}

func (s *Store) count(ctx context.Context, query string) (int64, error) {
	rows, err := s.Query(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) != 1 {
		return 0, fmt.Errorf("count query returned %d rows", len(rows))
	}
	count, ok := rows[0]["c"].(int64)
	if !ok {
		return 0, fmt.Errorf("count query returned %T, want int64", rows[0]["c"])
	}
	return count, nil
}

func batchNodes(nodes []graphs.Node, size int) [][]map[string]interface{} {
	if size <= 0 {
		size = len(nodes)
	}
	var batches [][]map[string]interface{}
	for start := 0; start < len(nodes); start += size {
		end := start + size
		if end > len(nodes) {
			end = len(nodes)
		}
		batch := make([]map[string]interface{}, 0, end-start)
		for _, n := range nodes[start:end] {
			batch = append(batch, map[string]interface{}{
				"key":   n.Key,
				"props": nodeProperties(n),
			})
		}
		batches = append(batches, batch)
	}
	return batches
}

// nodeProperties flattens a node for SET +=: metadata fields alongside the
// merged datatype properties. Multi-valued properties from the collect merge
// policy pass through as lists.
func nodeProperties(n graphs.Node) map[string]interface{} {
	props := make(map[string]interface{}, len(n.Properties)+3)
	for k, v := range n.Properties {
		props[k] = v
	}
	props["label"] = n.Label
	props["kind"] = n.Kind
	if n.IRI != "" {
		props["uri"] = n.IRI
	}
	return props
}

func batchRelations(relations []graphs.Relation, size int) [][]map[string]interface{} {
	if size <= 0 {
		size = len(relations)
	}
	var batches [][]map[string]interface{}
	for start := 0; start < len(relations); start += size {
		end := start + size
		if end > len(relations) {
			end = len(relations)
		}
		batch := make([]map[string]interface{}, 0, end-start)
		for _, r := range relations[start:end] {
			batch = append(batch, map[string]interface{}{
				"from":      r.From.Key,
				"to":        r.To.Key,
				"predicate": r.Predicate,
				"label":     r.PredicateLabel,
				"kind":      r.Kind,
			})
		}
		batches = append(batches, batch)
	}
	return batches
}

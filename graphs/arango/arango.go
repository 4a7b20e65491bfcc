package arango

import (
	"context"
	"fmt"
	"strings"

	driver "github.com/arangodb/go-driver"
	"github.com/arangodb/go-driver/http"

	"github.com/semlab/foafgraph/graphs"
)

var (
	ErrConnectionFailed  = fmt.Errorf("failed to connect to ArangoDB")
	ErrDatabaseNotFound  = fmt.Errorf("model database does not exist, run setup first")
	ErrModelMismatch     = fmt.Errorf("document model does not match the store's model")
	ErrPersistenceFailed = fmt.Errorf("failed to persist graph document")
)

// Store is an ArangoDB graph store bound to one model database.
type Store struct {
	client driver.Client
	model  graphs.Model
	opts   *options
}

var _ graphs.GraphStore = (*Store)(nil)

// New creates an ArangoDB graph store for the given model and verifies the
// connection by fetching the server version.
func New(ctx context.Context, model graphs.Model, opts ...Option) (*Store, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	conn, err := http.NewConnection(http.ConnectionConfig{
		Endpoints: options.endpoints,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	client, err := driver.NewClient(driver.ClientConfig{
		Connection:     conn,
		Authentication: driver.BasicAuthentication(options.username, options.password),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if _, err := client.Version(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return &Store{client: client, model: model, opts: options}, nil
}

// Model returns the strategy this store is bound to.
func (s *Store) Model() graphs.Model {
	return s.model
}

// DatabaseName returns the name of the model database.
func (s *Store) DatabaseName() string {
	return s.opts.databaseFor(string(s.model))
}

// Close closes the graph store. The underlying HTTP connection holds no
// state that needs tearing down.
func (s *Store) Close() error {
	return nil
}

// Version returns the server version string, used as a connection check.
func (s *Store) Version(ctx context.Context) (string, error) {
	info, err := s.client.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	return string(info.Version), nil
}

// database opens the model database, which must already exist.
func (s *Store) database(ctx context.Context) (driver.Database, error) {
	name := s.DatabaseName()
	exists, err := s.client.DatabaseExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check database %s: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, name)
	}
	return s.client.Database(ctx, name)
}

// recreateDatabase drops the model database if it exists and creates it
// fresh, giving ReplaceGraph its full-replace semantics.
func (s *Store) recreateDatabase(ctx context.Context) (driver.Database, error) {
	name := s.DatabaseName()

	exists, err := s.client.DatabaseExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check database %s: %w", name, err)
	}
	if exists {
		db, err := s.client.Database(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", name, err)
		}
		if err := db.Remove(ctx); err != nil {
			return nil, fmt.Errorf("drop database %s: %w", name, err)
		}
	}

	db, err := s.client.CreateDatabase(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("create database %s: %w", name, err)
	}
	return db, nil
}

// Query executes an AQL query against the model database and returns the
// result rows.
func (s *Store) Query(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	db, err := s.database(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := db.Query(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.DatabaseName(), err)
	}
	defer cursor.Close()

	var rows []map[string]interface{}
	for cursor.HasMore() {
		var row map[string]interface{}
		if _, err := cursor.ReadDocument(ctx, &row); err != nil {
			return nil, fmt.Errorf("read query result: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Stats returns per-collection document counts for the model database,
// skipping system collections.
func (s *Store) Stats(ctx context.Context) (*graphs.Stats, error) {
	db, err := s.database(ctx)
	if err != nil {
		return nil, err
	}

	cols, err := db.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	stats := &graphs.Stats{Database: s.DatabaseName()}
	for _, col := range cols {
		if strings.HasPrefix(col.Name(), "_") {
			continue
		}
		count, err := col.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", col.Name(), err)
		}
		props, err := col.Properties(ctx)
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", col.Name(), err)
		}
		stats.Collections = append(stats.Collections, graphs.CollectionStats{
			Name:  col.Name(),
			Count: count,
			Edge:  props.Type == driver.CollectionTypeEdge,
		})
	}
	return stats, nil
}

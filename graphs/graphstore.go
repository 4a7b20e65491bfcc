package graphs

import "context"

// GraphStore defines the interface for graph database backends that can hold
// one converted FOAF model.
type GraphStore interface {
	// ReplaceGraph persists a converted document, replacing any prior
	// contents of the model's collections so re-runs are idempotent.
	ReplaceGraph(ctx context.Context, doc *Document, options ...Option) error

	// Query executes a query against the graph store and returns the result
	// rows.
	Query(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)

	// Stats returns per-collection document counts for the stored model.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the graph store connection.
	Close() error
}

// Stats describes the collections holding one stored model.
type Stats struct {
	Database    string
	Collections []CollectionStats
}

// CollectionStats is the document count of a single collection.
type CollectionStats struct {
	Name  string
	Count int64
	Edge  bool
}

// Option defines functional options for graph store operations.
type Option func(*Options)

// Options contains configuration options for graph store operations.
type Options struct {
	// GraphName overrides the named graph definition created for the model.
	GraphName string
	// BatchSize specifies the batch size for bulk inserts.
	BatchSize int
	// SkipGraphDefinition suppresses creation of the named graph after the
	// collections are loaded.
	SkipGraphDefinition bool
}

// NewOptions creates a new Options instance with default values.
func NewOptions() *Options {
	return &Options{
		BatchSize: 500,
	}
}

// WithGraphName overrides the named graph created for the model.
func WithGraphName(name string) Option {
	return func(opts *Options) {
		opts.GraphName = name
	}
}

// WithBatchSize sets the batch size for bulk inserts.
func WithBatchSize(size int) Option {
	return func(opts *Options) {
		opts.BatchSize = size
	}
}

// WithSkipGraphDefinition suppresses creation of the named graph definition.
func WithSkipGraphDefinition(skip bool) Option {
	return func(opts *Options) {
		opts.SkipGraphDefinition = skip
	}
}

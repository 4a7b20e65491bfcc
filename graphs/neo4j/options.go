package neo4j

// Option is a function type for configuring a Neo4j graph store.
type Option func(*options)

// options contains the configuration for the Neo4j graph store.
type options struct {
	connectionURL string
	username      string
	password      string
	database      string
	nodeLabel     string
	relationType  string
}

// defaultOptions returns the default options for the Neo4j graph store.
func defaultOptions() *options {
	return &options{
		connectionURL: "bolt://localhost:7687",
		username:      "neo4j",
		password:      "password",
		database:      "neo4j",
		nodeLabel:     "Node",
		relationType:  "RELATION",
	}
}

// WithConnectionURL sets the Neo4j connection URL.
func WithConnectionURL(url string) Option {
	return func(o *options) {
		o.connectionURL = url
	}
}

// WithCredentials sets the Neo4j authentication credentials.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithDatabase sets the Neo4j database name.
func WithDatabase(database string) Option {
	return func(o *options) {
		o.database = database
	}
}

// WithNodeLabel overrides the label the unified node collection maps onto.
func WithNodeLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.nodeLabel = label
		}
	}
}

// WithRelationType overrides the relationship type the unified relation
// collection maps onto.
func WithRelationType(relType string) Option {
	return func(o *options) {
		if relType != "" {
			o.relationType = relType
		}
	}
}

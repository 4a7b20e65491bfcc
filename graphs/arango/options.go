package arango

import "strings"

// Option is a function type for configuring an ArangoDB graph store.
type Option func(*options)

// options contains the configuration for the ArangoDB graph store.
type options struct {
	endpoints      []string
	username       string
	password       string
	databasePrefix string
	databaseName   string
}

// defaultOptions returns the default options for the ArangoDB graph store.
func defaultOptions() *options {
	return &options{
		endpoints:      []string{"http://localhost:8529"},
		username:       "root",
		password:       "",
		databasePrefix: "FOAF",
	}
}

// WithEndpoints sets the ArangoDB server endpoints.
func WithEndpoints(endpoints ...string) Option {
	return func(o *options) {
		if len(endpoints) > 0 {
			o.endpoints = endpoints
		}
	}
}

// WithCredentials sets the ArangoDB authentication credentials.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.username = username
		o.password = password
	}
}

// WithDatabasePrefix sets the prefix the per-model database names are
// derived from. The default "FOAF" yields FOAF-RPT, FOAF-PGT and FOAF-LPGT.
func WithDatabasePrefix(prefix string) Option {
	return func(o *options) {
		if prefix != "" {
			o.databasePrefix = prefix
		}
	}
}

// WithDatabaseName overrides the derived database name entirely.
func WithDatabaseName(name string) Option {
	return func(o *options) {
		o.databaseName = name
	}
}

// databaseFor derives the database name for a model, e.g. FOAF-LPGT.
func (o *options) databaseFor(model string) string {
	if o.databaseName != "" {
		return o.databaseName
	}
	return o.databasePrefix + "-" + strings.ToUpper(model)
}

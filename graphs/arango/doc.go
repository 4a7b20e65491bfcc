// Package arango provides the ArangoDB graph store.
//
// Each store is bound to one model database (FOAF-RPT, FOAF-PGT or
// FOAF-LPGT, derived from the configured prefix). ReplaceGraph recreates the
// database from scratch, bulk-imports the converted node and relation
// collections and registers a named graph over the edge definitions found in
// the document, so a demo run is always idempotent.
//
// Example usage:
//
//	store, err := arango.New(ctx, graphs.ModelLPGT,
//		arango.WithEndpoints("http://localhost:8529"),
//		arango.WithCredentials("root", "openSesame"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.ReplaceGraph(ctx, result.Document)
package arango

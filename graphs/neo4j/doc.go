// Package neo4j provides a Neo4j graph store for the LPGT model.
//
// The single Node vertex collection maps onto a Node label and the unified
// relation edge collection onto RELATION relationships carrying the full
// predicate IRI and its local-name label as properties, so the unified-
// collection shape of the model survives the move to a store without
// collections. ReplaceGraph detaches and deletes prior Node entities before
// importing, matching the idempotent re-run semantics of the ArangoDB store.
package neo4j

// Package foaf holds the FOAF vocabulary, a small embedded sample dataset
// and the demonstration query sets run against each stored model.
package foaf

import (
	_ "embed"
	"strings"

	"github.com/semlab/foafgraph/rdf"
)

// NS is the FOAF namespace.
const NS = "http://xmlns.com/foaf/0.1/"

// FOAF vocabulary used by the demo.
const (
	Person     = NS + "Person"
	Name       = NS + "name"
	FirstName  = NS + "firstName"
	FamilyName = NS + "familyName"
	Age        = NS + "age"
	Mbox       = NS + "mbox"
	Title      = NS + "title"
	Interest   = NS + "interest"
	Homepage   = NS + "homepage"
	Knows      = NS + "knows"
)

//go:embed sample/foaf-data.ttl
var sampleData string

// SampleTriples decodes the embedded sample dataset. It stands in for an
// external data file so the demo runs without any setup.
func SampleTriples() ([]rdf.Triple, error) {
	return rdf.DecodeAll(strings.NewReader(sampleData), rdf.Turtle)
}

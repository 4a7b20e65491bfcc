package foaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semlab/foafgraph/graphs"
	"github.com/semlab/foafgraph/rdf"
)

func TestSampleTriples(t *testing.T) {
	triples, err := SampleTriples()
	require.NoError(t, err)
	assert.Len(t, triples, 55)

	persons := 0
	blanks := 0
	langLiterals := 0
	for _, tr := range triples {
		if tr.Predicate.Value == rdf.TypeIRI && tr.Object.Value == Person {
			persons++
		}
		if tr.Subject.Kind == rdf.TermBlank {
			blanks++
		}
		if tr.Object.Kind == rdf.TermLiteral && tr.Object.Language != "" {
			langLiterals++
		}
	}

	// Six named persons plus the anonymous colleague.
	assert.Equal(t, 7, persons)
	assert.Equal(t, 3, blanks)
	assert.Equal(t, 1, langLiterals)
}

func TestSampleAgesAreTyped(t *testing.T) {
	triples, err := SampleTriples()
	require.NoError(t, err)

	for _, tr := range triples {
		if tr.Predicate.Value != Age {
			continue
		}
		require.Equal(t, rdf.XSDInteger, tr.Object.Datatype)
		_, ok := tr.Object.Native().(int64)
		assert.True(t, ok, "age %s should coerce to int64", tr.Object)
	}
}

func TestDemoQueries(t *testing.T) {
	for _, model := range graphs.Models {
		queries := DemoQueries(model)
		assert.NotEmpty(t, queries, "no demo queries for %s", model)
		for _, q := range queries {
			assert.NotEmpty(t, q.Name)
			assert.NotEmpty(t, q.Text)
		}
	}
	assert.Nil(t, DemoQueries(graphs.Model("bogus")))
}

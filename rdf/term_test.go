package rdf

import "testing"

func TestLocalName(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{"http://xmlns.com/foaf/0.1/knows", "knows"},
		{"http://www.w3.org/1999/02/22-rdf-syntax-ns#type", "type"},
		{"http://example.org/path#frag/notlast", "frag/notlast"},
		{"http://example.org/people/alice", "alice"},
		{"urn:isbn:0451450523", "urn:isbn:0451450523"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LocalName(tt.iri); got != tt.want {
			t.Errorf("LocalName(%q) = %q, want %q", tt.iri, got, tt.want)
		}
	}
}

func TestNativeCoercion(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want interface{}
	}{
		{"integer", NewTypedLiteral("42", XSDInteger), int64(42)},
		{"int", NewTypedLiteral("-7", XSDInt), int64(-7)},
		{"double", NewTypedLiteral("3.5", XSDDouble), 3.5},
		{"decimal", NewTypedLiteral("0.25", XSDDecimal), 0.25},
		{"boolean", NewTypedLiteral("true", XSDBoolean), true},
		{"plain string", NewLiteral("Alice"), "Alice"},
		{"lang literal", NewLangLiteral("Entwicklerin", "de"), "Entwicklerin"},
		{"unparseable integer keeps lexical form", NewTypedLiteral("forty-two", XSDInteger), "forty-two"},
		{"unknown datatype keeps lexical form", NewTypedLiteral("2024-01-01", "http://www.w3.org/2001/XMLSchema#date"), "2024-01-01"},
		{"iri returns identifier", NewIRI("http://example.org/a"), "http://example.org/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.Native(); got != tt.want {
				t.Errorf("Native() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNewBlankTrimsPrefix(t *testing.T) {
	if got := NewBlank("_:b0").Value; got != "b0" {
		t.Errorf("NewBlank(\"_:b0\").Value = %q, want \"b0\"", got)
	}
	if got := NewBlank("b1").Value; got != "b1" {
		t.Errorf("NewBlank(\"b1\").Value = %q, want \"b1\"", got)
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{NewIRI("http://example.org/a"), "<http://example.org/a>"},
		{NewBlank("b0"), "_:b0"},
		{NewLiteral("Alice"), `"Alice"`},
		{NewLangLiteral("hallo", "de"), `"hallo"@de`},
		{NewTypedLiteral("42", XSDInteger), `"42"^^<` + XSDInteger + ">"},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestIsResource(t *testing.T) {
	if !NewIRI("http://example.org/a").IsResource() {
		t.Error("IRI should be a resource")
	}
	if !NewBlank("b0").IsResource() {
		t.Error("blank node should be a resource")
	}
	if NewLiteral("x").IsResource() {
		t.Error("literal should not be a resource")
	}
}

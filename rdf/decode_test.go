package rdf

import (
	"errors"
	"strings"
	"testing"
)

const sampleTurtle = `@prefix foaf: <http://xmlns.com/foaf/0.1/> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix ex: <http://example.org/people/> .

ex:alice a foaf:Person ;
	foaf:name "Alice" ;
	foaf:age "30"^^xsd:integer ;
	foaf:title "Entwicklerin"@de ;
	foaf:knows ex:bob .

ex:bob a foaf:Person ;
	foaf:name "Bob" .

_:anon foaf:knows ex:alice .
`

func TestDecodeAll(t *testing.T) {
	triples, err := DecodeAll(strings.NewReader(sampleTurtle), Turtle)
	if err != nil {
		t.Fatalf("DecodeAll() error: %v", err)
	}
	if len(triples) != 8 {
		t.Fatalf("DecodeAll() returned %d triples, want 8", len(triples))
	}

	byPredicate := make(map[string][]Triple)
	for _, tr := range triples {
		byPredicate[LocalName(tr.Predicate.Value)] = append(byPredicate[LocalName(tr.Predicate.Value)], tr)
	}

	ages := byPredicate["age"]
	if len(ages) != 1 {
		t.Fatalf("got %d age statements, want 1", len(ages))
	}
	age := ages[0].Object
	if age.Kind != TermLiteral || age.Datatype != XSDInteger {
		t.Errorf("age object = %s, want integer literal", age)
	}
	if got := age.Native(); got != int64(30) {
		t.Errorf("age.Native() = %v, want int64(30)", got)
	}

	titles := byPredicate["title"]
	if len(titles) != 1 {
		t.Fatalf("got %d title statements, want 1", len(titles))
	}
	if lang := titles[0].Object.Language; lang != "de" {
		t.Errorf("title language = %q, want \"de\"", lang)
	}

	var sawBlankSubject bool
	for _, tr := range triples {
		if tr.Subject.Kind == TermBlank {
			sawBlankSubject = true
		}
	}
	if !sawBlankSubject {
		t.Error("expected a blank node subject in the decoded set")
	}
}

func TestDecodeAllMalformed(t *testing.T) {
	_, err := DecodeAll(strings.NewReader("this is not turtle at all {{{"), Turtle)
	if err == nil {
		t.Fatal("DecodeAll() on malformed input: expected error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("DecodeAll() error = %T, want *ParseError", err)
	}
}

func TestDecodeAllEmpty(t *testing.T) {
	triples, err := DecodeAll(strings.NewReader(""), Turtle)
	if err != nil {
		t.Fatalf("DecodeAll() on empty input: %v", err)
	}
	if len(triples) != 0 {
		t.Errorf("DecodeAll() on empty input returned %d triples", len(triples))
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"data/foaf.ttl", Turtle, false},
		{"FOAF.TTL", Turtle, false},
		{"dump.nt", NTriples, false},
		{"ontology.owl", RDFXML, false},
		{"export.rdf", RDFXML, false},
		{"notes.txt", Turtle, true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{
		"turtle": Turtle, "ttl": Turtle,
		"ntriples": NTriples, "nt": NTriples,
		"rdfxml": RDFXML, "xml": RDFXML,
	} {
		got, err := ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v, nil", name, got, err, want)
		}
	}
	if _, err := ParseFormat("json-ld"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(\"json-ld\") error = %v, want ErrUnknownFormat", err)
	}
}

func TestTripleValidate(t *testing.T) {
	pred := NewIRI("http://xmlns.com/foaf/0.1/name")
	tests := []struct {
		name    string
		triple  Triple
		wantErr bool
	}{
		{"valid literal object", Triple{NewIRI("http://example.org/a"), pred, NewLiteral("Alice")}, false},
		{"valid blank subject", Triple{NewBlank("b0"), pred, NewIRI("http://example.org/a")}, false},
		{"literal subject", Triple{NewLiteral("Alice"), pred, NewLiteral("x")}, true},
		{"blank predicate", Triple{NewIRI("http://example.org/a"), NewBlank("p"), NewLiteral("x")}, true},
		{"empty subject", Triple{Term{Kind: TermIRI}, pred, NewLiteral("x")}, true},
		{"empty predicate", Triple{NewIRI("http://example.org/a"), Term{Kind: TermIRI}, NewLiteral("x")}, true},
		{"empty resource object", Triple{NewIRI("http://example.org/a"), pred, Term{Kind: TermIRI}}, true},
		{"empty literal object is fine", Triple{NewIRI("http://example.org/a"), pred, NewLiteral("")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.triple.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package rdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	knakk "github.com/knakk/rdf"
)

// Format identifies a supported RDF serialization.
type Format int

const (
	// Turtle is the Terse RDF Triple Language (.ttl).
	Turtle Format = iota
	// NTriples is the line-based N-Triples format (.nt).
	NTriples
	// RDFXML is the XML serialization of RDF (.rdf, .xml, .owl).
	RDFXML
)

// ErrUnknownFormat is returned when a file extension does not map to a
// supported RDF serialization.
var ErrUnknownFormat = fmt.Errorf("unknown RDF format")

func (f Format) String() string {
	switch f {
	case Turtle:
		return "turtle"
	case NTriples:
		return "ntriples"
	case RDFXML:
		return "rdfxml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

func (f Format) knakk() knakk.Format {
	switch f {
	case NTriples:
		return knakk.NTriples
	case RDFXML:
		return knakk.RDFXML
	default:
		return knakk.Turtle
	}
}

// FormatFromPath infers the serialization from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttl", ".turtle", ".n3":
		return Turtle, nil
	case ".nt":
		return NTriples, nil
	case ".rdf", ".xml", ".owl":
		return RDFXML, nil
	default:
		return Turtle, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "turtle", "ttl":
		return Turtle, nil
	case "ntriples", "nt":
		return NTriples, nil
	case "rdfxml", "xml", "rdf":
		return RDFXML, nil
	default:
		return Turtle, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DecodeAll reads every statement from r and returns the materialized triple
// sequence. Decoding stops at the first malformed statement, which is
// reported as a *ParseError carrying its position; a partially decoded
// sequence is never returned.
func DecodeAll(r io.Reader, format Format) ([]Triple, error) {
	dec := knakk.NewTripleDecoder(r, format.knakk())

	var triples []Triple
	for i := 0; ; i++ {
		kt, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Index: i, Err: err}
		}

		t := fromKnakk(kt)
		if verr := t.Validate(); verr != nil {
			return nil, &ParseError{Index: i, Err: verr}
		}
		triples = append(triples, t)
	}

	return triples, nil
}

// DecodeFile reads every statement from the file at path, inferring the
// serialization from the file extension.
func DecodeFile(path string) ([]Triple, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open RDF file: %w", err)
	}
	defer f.Close()

	triples, err := DecodeAll(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return triples, nil
}

// fromKnakk converts a decoded statement into the closed term variant.
func fromKnakk(t knakk.Triple) Triple {
	return Triple{
		Subject:   termFromKnakk(t.Subj),
		Predicate: termFromKnakk(t.Pred),
		Object:    termFromKnakk(t.Obj),
	}
}

func termFromKnakk(term knakk.Term) Term {
	switch term.Type() {
	case knakk.TermBlank:
		return NewBlank(term.String())
	case knakk.TermLiteral:
		lit, ok := term.(knakk.Literal)
		if !ok {
			return NewLiteral(term.String())
		}
		if lang := lit.Lang(); lang != "" {
			return NewLangLiteral(lit.String(), lang)
		}
		if dt := lit.DataType.String(); dt != "" && dt != XSDString {
			return NewTypedLiteral(lit.String(), dt)
		}
		return NewLiteral(lit.String())
	default:
		return NewIRI(term.String())
	}
}

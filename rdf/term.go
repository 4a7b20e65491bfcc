package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// TermKind identifies one of the three RDF term kinds.
type TermKind int

const (
	// TermIRI is a URI-reference identifying a resource.
	TermIRI TermKind = iota
	// TermBlank is an anonymous resource scoped to one dataset.
	TermBlank
	// TermLiteral is a concrete value with an optional datatype or language tag.
	TermLiteral
)

// String returns the kind tag used in persisted documents.
func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "URIRef"
	case TermBlank:
		return "BNode"
	case TermLiteral:
		return "Literal"
	default:
		return fmt.Sprintf("TermKind(%d)", int(k))
	}
}

// Well-known XSD datatype IRIs used for literal coercion.
const (
	XSDInteger = "http://www.w3.org/2001/XMLSchema#integer"
	XSDInt     = "http://www.w3.org/2001/XMLSchema#int"
	XSDLong    = "http://www.w3.org/2001/XMLSchema#long"
	XSDFloat   = "http://www.w3.org/2001/XMLSchema#float"
	XSDDouble  = "http://www.w3.org/2001/XMLSchema#double"
	XSDDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	XSDBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
	XSDString  = "http://www.w3.org/2001/XMLSchema#string"
)

// Term is one RDF term. Kind selects which of the remaining fields are
// meaningful: Value holds the IRI string, the blank node label, or the
// literal's lexical form; Datatype and Language apply to literals only.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Language string
}

// NewIRI returns a URI-reference term.
func NewIRI(iri string) Term {
	return Term{Kind: TermIRI, Value: iri}
}

// NewBlank returns a blank node term with the given label.
func NewBlank(label string) Term {
	return Term{Kind: TermBlank, Value: strings.TrimPrefix(label, "_:")}
}

// NewLiteral returns a plain string literal.
func NewLiteral(value string) Term {
	return Term{Kind: TermLiteral, Value: value}
}

// NewTypedLiteral returns a literal tagged with a datatype IRI.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Kind: TermLiteral, Value: value, Datatype: datatype}
}

// NewLangLiteral returns a literal tagged with a language.
func NewLangLiteral(value, language string) Term {
	return Term{Kind: TermLiteral, Value: value, Language: language}
}

// IsResource reports whether the term can stand on its own as a graph node,
// i.e. it is an IRI or a blank node.
func (t Term) IsResource() bool {
	switch t.Kind {
	case TermIRI, TermBlank:
		return true
	case TermLiteral:
		return false
	default:
		return false
	}
}

// Native returns the literal's value coerced to a Go type based on its
// datatype: integer datatypes become int64, float datatypes float64 and
// booleans bool. A lexical form that does not parse under its declared
// datatype falls back to the raw string rather than failing, matching the
// loader this replaces. Non-literal terms return their identifier string.
func (t Term) Native() interface{} {
	if t.Kind != TermLiteral {
		return t.Value
	}

	switch t.Datatype {
	case XSDInteger, XSDInt, XSDLong:
		if n, err := strconv.ParseInt(t.Value, 10, 64); err == nil {
			return n
		}
	case XSDFloat, XSDDouble, XSDDecimal:
		if f, err := strconv.ParseFloat(t.Value, 64); err == nil {
			return f
		}
	case XSDBoolean:
		if b, err := strconv.ParseBool(t.Value); err == nil {
			return b
		}
	}

	return t.Value
}

// String renders the term for logs and error messages.
func (t Term) String() string {
	switch t.Kind {
	case TermIRI:
		return "<" + t.Value + ">"
	case TermBlank:
		return "_:" + t.Value
	case TermLiteral:
		if t.Datatype != "" {
			return strconv.Quote(t.Value) + "^^<" + t.Datatype + ">"
		}
		if t.Language != "" {
			return strconv.Quote(t.Value) + "@" + t.Language
		}
		return strconv.Quote(t.Value)
	default:
		return t.Value
	}
}

// LocalName extracts the short human-readable suffix of an IRI: the part
// after the last '#', else after the last '/', else the full string.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

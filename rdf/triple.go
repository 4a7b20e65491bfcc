package rdf

import "fmt"

// Triple is one (subject, predicate, object) statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Validate rejects statements that cannot appear in well-formed RDF:
// subjects must be resources, predicates must be IRIs, and no component
// may be empty.
func (t Triple) Validate() error {
	if t.Subject.Value == "" {
		return fmt.Errorf("missing subject")
	}
	if !t.Subject.IsResource() {
		return fmt.Errorf("subject %s must be a URI-reference or blank node", t.Subject)
	}
	if t.Predicate.Value == "" {
		return fmt.Errorf("missing predicate")
	}
	if t.Predicate.Kind != TermIRI {
		return fmt.Errorf("predicate %s must be a URI-reference", t.Predicate)
	}
	if t.Object.Kind != TermLiteral && t.Object.Value == "" {
		return fmt.Errorf("missing object")
	}
	return nil
}

// String renders the triple for logs and error messages.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// ParseError reports a malformed statement together with its zero-based
// position in the input sequence.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("triple %d: %v", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

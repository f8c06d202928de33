package domparser

import "fmt"

// ParseError is the base error type for all domparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// UnterminatedTagError is returned when a '<' has no closing '>' before the
// end of input. Pos is the position of the '<'.
type UnterminatedTagError struct{ ParseError }

// UnterminatedAttributeValueError is returned when an attribute value's
// opening quote is never closed. Pos is the position of the opening quote.
type UnterminatedAttributeValueError struct{ ParseError }

// MalformedAttributeError is returned for attributes that are not written as
// name="value", such as a bare boolean attribute or an unquoted value.
type MalformedAttributeError struct{ ParseError }

// MismatchedEndTagError is returned when an end tag does not close the
// innermost open element.
type MismatchedEndTagError struct {
	ParseError
	Expected Tag
	Found    Tag
}

func newMismatchedEndTagError(expected, found Tag, pos Position) *MismatchedEndTagError {
	return &MismatchedEndTagError{
		ParseError: ParseError{
			Message: fmt.Sprintf("mismatched end tag: expected </%s>, found </%s>", expected.Name, found.Name),
			Pos:     pos,
		},
		Expected: expected,
		Found:    found,
	}
}

// StrayEndTagError is returned for an end tag while no element is open.
type StrayEndTagError struct {
	ParseError
	Found Tag
}

// UnclosedElementError is returned when input ends while elements are still
// open. Tag is the innermost open element; Pos is its start tag.
type UnclosedElementError struct {
	ParseError
	Tag Tag
}

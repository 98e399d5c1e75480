package deck

import (
	"errors"
	"fmt"
)

// Sentinel errors for the deck package. Every typed error below unwraps
// to one of these, so callers can classify failures with errors.Is
// without depending on the concrete struct types.
var (
	// ErrParse is the document-level structural failure class.
	ErrParse = errors.New("deck: invalid document structure")

	// ErrInvalidMetadataFormat is returned when a metadata comment's
	// outer shape does not match the expected grammar.
	ErrInvalidMetadataFormat = errors.New("deck: invalid metadata format")

	// ErrInvalidFieldValue is returned when a specific field within a
	// metadata line fails its codec.
	ErrInvalidFieldValue = errors.New("deck: invalid field value")
)

// ParseError reports a document-level structural syntax violation,
// such as a byte sequence that is not valid UTF-8.
type ParseError struct {
	Line    int // 1-based line of the violation
	Column  int // 1-based column of the violation
	Message string
	Excerpt string // the offending source line, possibly truncated
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d, column %d: %s", ErrParse, e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// MetadataFormatError reports a metadata comment line whose outer shape
// does not match `<!--@ ... -->`.
type MetadataFormatError struct {
	Line   int    // 1-based line number, 0 when unknown to the caller
	Raw    string // the raw line as encountered
	Reason string
}

func (e *MetadataFormatError) Error() string {
	return fmt.Sprintf("%v: line %d: %s: %q", ErrInvalidMetadataFormat, e.Line, e.Reason, e.Raw)
}

func (e *MetadataFormatError) Unwrap() error { return ErrInvalidMetadataFormat }

// FieldValueError reports a single field within a metadata line that
// fails its codec. Grammar describes what the codec would have accepted.
type FieldValueError struct {
	Line    int    // 1-based line number, 0 when unknown to the caller
	Field   string // field name, e.g. "stability"
	Value   string // the offending raw token
	Grammar string // expected grammar, e.g. `(0|[1-9]\d*)(\.\d+)?`
}

func (e *FieldValueError) Error() string {
	return fmt.Sprintf(
		"%v: line %d: field %q: %q does not match %s",
		ErrInvalidFieldValue, e.Line, e.Field, e.Value, e.Grammar,
	)
}

func (e *FieldValueError) Unwrap() error { return ErrInvalidFieldValue }

package deck

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Metadata comment delimiters. The single space after the opener is part
// of the grammar; fields are separated by single spaces and the closer
// abuts the last field.
const (
	metadataOpen  = "<!--@ "
	metadataClose = "-->"
)

// Field names, in positional order, as reported by FieldValueError.
const (
	FieldID            = "id"
	FieldStability     = "stability"
	FieldDifficulty    = "difficulty"
	FieldState         = "state"
	FieldLearningSteps = "learningSteps"
	FieldLastReview    = "lastReview"
)

// ItemMetadata is the machine-managed scheduling record for one card.
// The scheduler's output fields (stability, difficulty, state, learning
// steps, last review) are carried and validated here but never computed
// here. Records are replaced whole, never mutated field by field: a
// review event builds a new record via WithReview, and external edits
// surface as a fresh record on the next parse. Whole-record replacement
// keeps structural equality an exact round-trip check.
type ItemMetadata struct {
	ID            ItemID
	Stability     NumericField
	Difficulty    NumericField
	State         State
	LearningSteps LearningSteps
	LastReview    *time.Time // nil until the card has been reviewed
}

// NewItemMetadata creates a fresh all-zero record with a newly generated
// identifier, for a card that has just been authored.
func NewItemMetadata() ItemMetadata {
	return NewItemMetadataWithID(NewItemID())
}

// NewItemMetadataWithID creates a fresh all-zero record carrying the
// given identifier.
func NewItemMetadataWithID(id ItemID) ItemMetadata {
	return ItemMetadata{
		ID:            id,
		Stability:     ZeroNumericField(),
		Difficulty:    ZeroNumericField(),
		State:         StateNew,
		LearningSteps: 0,
		LastReview:    nil,
	}
}

// WithReview returns a new record that carries the scheduler's output
// for a completed review. The receiver is not modified.
func (m ItemMetadata) WithReview(
	stability, difficulty NumericField,
	state State,
	steps LearningSteps,
	reviewedAt time.Time,
) ItemMetadata {
	at := reviewedAt
	return ItemMetadata{
		ID:            m.ID,
		Stability:     stability,
		Difficulty:    difficulty,
		State:         state,
		LearningSteps: steps,
		LastReview:    &at,
	}
}

// IsMetadataLine reports whether a physical line (without its newline,
// optionally with a trailing carriage return) begins a metadata comment.
// A line that opens like one but is malformed inside still counts: the
// parser must fail loudly on it rather than swallow it as card content.
func IsMetadataLine(line string) bool {
	return strings.HasPrefix(line, strings.TrimSuffix(metadataOpen, " "))
}

// ParseMetadataLine decodes one metadata comment line into a record.
// The line must not include its newline; a trailing "\r" is tolerated
// and stripped (preserving a file's CRLF convention on re-serialization
// is the caller's concern). lineNum is carried into any error for
// diagnostics and may be 0 when unknown.
func ParseMetadataLine(line string, lineNum int) (ItemMetadata, error) {
	raw := strings.TrimSuffix(line, "\r")

	if !strings.HasPrefix(raw, metadataOpen) || !strings.HasSuffix(raw, metadataClose) {
		return ItemMetadata{}, &MetadataFormatError{
			Line:   lineNum,
			Raw:    raw,
			Reason: "metadata comment must look like " + metadataOpen + "..." + metadataClose,
		}
	}

	inner := raw[len(metadataOpen) : len(raw)-len(metadataClose)]
	tokens := strings.Fields(inner)
	if len(tokens) < 5 || len(tokens) > 6 {
		return ItemMetadata{}, &MetadataFormatError{
			Line:   lineNum,
			Raw:    raw,
			Reason: fmt.Sprintf("expected 5 or 6 fields, got %d", len(tokens)),
		}
	}

	var m ItemMetadata
	var err error

	if m.ID, err = ParseItemID(tokens[0]); err != nil {
		return ItemMetadata{}, locate(err, FieldID, lineNum)
	}
	if m.Stability, err = ParseNumericField(tokens[1]); err != nil {
		return ItemMetadata{}, locate(err, FieldStability, lineNum)
	}
	if m.Difficulty, err = ParseNumericField(tokens[2]); err != nil {
		return ItemMetadata{}, locate(err, FieldDifficulty, lineNum)
	}
	if m.State, err = ParseState(tokens[3]); err != nil {
		return ItemMetadata{}, locate(err, FieldState, lineNum)
	}
	if m.LearningSteps, err = ParseLearningSteps(tokens[4]); err != nil {
		return ItemMetadata{}, locate(err, FieldLearningSteps, lineNum)
	}
	if len(tokens) == 6 {
		at, err := ParseTimestamp(tokens[5])
		if err != nil {
			return ItemMetadata{}, locate(err, FieldLastReview, lineNum)
		}
		m.LastReview = &at
	}

	return m, nil
}

// FormatMetadataLine encodes a record as one metadata comment line,
// without a trailing newline. An absent last review is omitted entirely,
// never emitted as an empty token.
func FormatMetadataLine(m ItemMetadata) string {
	fields := []string{
		m.ID.String(),
		m.Stability.String(),
		m.Difficulty.String(),
		m.State.Encode(),
		m.LearningSteps.Encode(),
	}
	if m.LastReview != nil {
		fields = append(fields, FormatTimestamp(*m.LastReview))
	}
	return metadataOpen + strings.Join(fields, " ") + metadataClose
}

// locate stamps the field name and line number onto a codec failure.
// Field codecs report the offending value and grammar; only the
// composing line codec knows which positional field was being decoded.
func locate(err error, field string, lineNum int) error {
	var fe *FieldValueError
	if errors.As(err, &fe) {
		return &FieldValueError{Line: lineNum, Field: field, Value: fe.Value, Grammar: fe.Grammar}
	}
	return err
}

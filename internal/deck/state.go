package deck

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State represents the learning stage of a card.
type State int

const (
	StateNew        State = iota // Never reviewed.
	StateLearning                // In initial learning steps.
	StateReview                  // Entered the long-term review cycle.
	StateRelearning              // Forgotten, relearning.
)

// StateGrammar is the on-disk grammar for the state field: one digit 0-3.
const StateGrammar = `[0-3]`

var (
	stateNames = [...]string{
		StateNew:        "New",
		StateLearning:   "Learning",
		StateReview:     "Review",
		StateRelearning: "Relearning",
	}
	stateByName = map[string]State{
		"New":        StateNew,
		"Learning":   StateLearning,
		"Review":     StateReview,
		"Relearning": StateRelearning,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = State(0)
	_ json.Marshaler           = State(0)
	_ json.Unmarshaler         = (*State)(nil)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

// IsValid reports whether s is one of the four representable states.
func (s State) IsValid() bool {
	return s >= StateNew && s <= StateRelearning
}

// String returns the name of the state ("New", "Learning", "Review",
// "Relearning"). For invalid values it returns "State(n)".
func (s State) String() string {
	if s.IsValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState decodes the single-digit on-disk form. Anything but exactly
// one of "0", "1", "2", "3" is rejected: multi-digit, signed, and named
// forms are all invalid in a metadata line.
func ParseState(raw string) (State, error) {
	if len(raw) == 1 && raw[0] >= '0' && raw[0] <= '3' {
		return State(raw[0] - '0'), nil
	}
	return 0, &FieldValueError{Value: raw, Grammar: StateGrammar}
}

// Encode returns the single-digit on-disk form.
func (s State) Encode() string {
	return string(rune('0' + s))
}

// MarshalText implements encoding.TextMarshaler using the state name.
func (s State) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFieldValue, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Expects a state name.
func (s *State) UnmarshalText(text []byte) error {
	v, ok := stateByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFieldValue, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. State serializes as a JSON string.
func (s State) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, data)
	}
	return s.UnmarshalText([]byte(str))
}

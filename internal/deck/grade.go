package deck

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidGrade is returned when a value outside the four-valued
// grade domain is decoded or marshaled.
var ErrInvalidGrade = errors.New("deck: invalid grade")

// Grade is the user's self-assessment of recall quality for one card.
// The scheduling algorithm that turns grades into new stability,
// difficulty, and due values lives outside this package; Grade exists
// here because card specifications map review responses onto it.
type Grade int

const (
	GradeAgain Grade = iota + 1 // Complete failure to recall.
	GradeHard                   // Recalled with significant difficulty.
	GradeGood                   // Recalled with some effort.
	GradeEasy                   // Recalled effortlessly.
)

var (
	gradeNames = [...]string{
		GradeAgain: "Again",
		GradeHard:  "Hard",
		GradeGood:  "Good",
		GradeEasy:  "Easy",
	}
	gradeByName = map[string]Grade{
		"Again": GradeAgain,
		"Hard":  GradeHard,
		"Good":  GradeGood,
		"Easy":  GradeEasy,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Grade(0)
	_ json.Marshaler           = Grade(0)
	_ json.Unmarshaler         = (*Grade)(nil)
	_ encoding.TextMarshaler   = Grade(0)
	_ encoding.TextUnmarshaler = (*Grade)(nil)
)

// IsValid reports whether g is a valid grade (Again through Easy).
func (g Grade) IsValid() bool {
	return g >= GradeAgain && g <= GradeEasy
}

// String returns the name of the grade ("Again", "Hard", "Good", "Easy").
// For invalid values it returns "Grade(n)".
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(text []byte) error {
	v, ok := gradeByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidGrade, text)
	}
	*g = v
	return nil
}

// MarshalJSON implements json.Marshaler. Grade serializes as a JSON string.
func (g Grade) MarshalJSON() ([]byte, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGrade, data)
	}
	return g.UnmarshalText([]byte(s))
}

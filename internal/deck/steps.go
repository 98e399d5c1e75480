package deck

import (
	"regexp"
	"strconv"
)

// LearningStepsGrammar is the grammar for the learning-steps field:
// a non-negative integer in canonical decimal form, no leading zeros.
const LearningStepsGrammar = `0|[1-9]\d*`

var learningStepsPattern = regexp.MustCompile(`^(` + LearningStepsGrammar + `)$`)

// LearningSteps counts how many learning (or relearning) steps the card
// has completed in its current state.
type LearningSteps int

// ParseLearningSteps decodes the canonical decimal form. Signed values,
// leading zeros, and non-digit input are rejected.
func ParseLearningSteps(raw string) (LearningSteps, error) {
	if !learningStepsPattern.MatchString(raw) {
		return 0, &FieldValueError{Value: raw, Grammar: LearningStepsGrammar}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldValueError{Value: raw, Grammar: LearningStepsGrammar}
	}
	return LearningSteps(n), nil
}

// Encode returns the canonical decimal form.
func (n LearningSteps) Encode() string {
	return strconv.Itoa(int(n))
}

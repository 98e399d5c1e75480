package deck

import (
	"math"
	"regexp"
	"strconv"
)

// NumericGrammar is the grammar accepted for numeric scheduling fields:
// a non-negative decimal with an optional fractional part, no exponent,
// no sign, and no leading zeros except a bare "0".
const NumericGrammar = `(0|[1-9]\d*)(\.\d+)?`

var numericPattern = regexp.MustCompile(`^` + NumericGrammar + `$`)

// NumericField is a scheduling value that keeps the exact text it was
// decoded from. Raw is authoritative for serialization (so "5.20" stays
// "5.20" and is never normalized to "5.2"); Value is authoritative for
// computation. The two are never paired up by hand: fields are produced
// only by ParseNumericField, NumericFieldFromFloat, or ZeroNumericField.
type NumericField struct {
	Value float64
	Raw   string
}

// ZeroNumericField returns the canonical zero field, used when a fresh
// metadata record is created for a card that has never been reviewed.
func ZeroNumericField() NumericField {
	return NumericField{Value: 0, Raw: "0"}
}

// ParseNumericField decodes a raw token against NumericGrammar.
// Exponent notation, signs, "Infinity", "NaN", leading-zero integers,
// and bare-dot forms like ".5" or "5." are all rejected.
func ParseNumericField(raw string) (NumericField, error) {
	if !numericPattern.MatchString(raw) {
		return NumericField{}, &FieldValueError{Value: raw, Grammar: NumericGrammar}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		// The grammar already excludes these; a finite check guards the
		// overflow-to-Inf case on absurdly long inputs.
		return NumericField{}, &FieldValueError{Value: raw, Grammar: NumericGrammar}
	}
	return NumericField{Value: v, Raw: raw}, nil
}

// NumericFieldFromFloat builds a field from a computed value, e.g. a new
// stability produced by the scheduler after a review. The value must be
// finite and non-negative; the raw form is the shortest decimal that
// round-trips through ParseNumericField.
func NumericFieldFromFloat(v float64) (NumericField, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) || v < 0 {
		return NumericField{}, &FieldValueError{
			Value:   strconv.FormatFloat(v, 'f', -1, 64),
			Grammar: NumericGrammar,
		}
	}
	raw := strconv.FormatFloat(v, 'f', -1, 64)
	return NumericField{Value: v, Raw: raw}, nil
}

// String returns the authoritative raw form.
func (f NumericField) String() string { return f.Raw }

package deck

import (
	"regexp"
	"strconv"
	"time"
)

// TimestampGrammar describes the accepted last-review form: a full
// ISO-8601 date-time with an explicit timezone, either "Z" or "±HH:MM".
const TimestampGrammar = `YYYY-MM-DDThh:mm:ss[.fff](Z|±HH:MM)`

var timestampPattern = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})(\.\d{1,9})?(Z|[+-]\d{2}:\d{2})$`,
)

// ParseTimestamp decodes a strict ISO-8601 instant. Validation is
// two-stage: the raw string must match TimestampGrammar, and the decoded
// instant, rendered back in the input's own offset, must reproduce the
// calendar fields byte for byte. The second stage rejects inputs that a
// lenient parser would silently normalize, such as a 30th of February,
// regardless of which offset they carry.
func ParseTimestamp(raw string) (time.Time, error) {
	m := timestampPattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, &FieldValueError{Value: raw, Grammar: TimestampGrammar}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, &FieldValueError{Value: raw, Grammar: TimestampGrammar}
	}
	loc := time.UTC
	if m[3] != "Z" {
		sign := 1
		if m[3][0] == '-' {
			sign = -1
		}
		hh, _ := strconv.Atoi(m[3][1:3])
		mm, _ := strconv.Atoi(m[3][4:6])
		loc = time.FixedZone(m[3], sign*(hh*3600+mm*60))
	}
	if t.In(loc).Format("2006-01-02T15:04:05") != m[1] {
		return time.Time{}, &FieldValueError{Value: raw, Grammar: TimestampGrammar}
	}
	return t, nil
}

// FormatTimestamp encodes an instant in the canonical on-disk form:
// UTC with millisecond precision, e.g. "2025-01-04T10:30:00.000Z".
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000") + "Z"
}

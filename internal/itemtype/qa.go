package itemtype

import (
	"fmt"
	"strings"
)

// QASeparator is the default separator line between question and answer.
const QASeparator = "---"

// QA is the question/answer item type: content split on the first line
// whose entire trimmed text equals the separator token.
type QA struct {
	separator string
}

// NewQA returns a question/answer type using QASeparator.
func NewQA() *QA {
	return NewQAWithSeparator(QASeparator)
}

// NewQAWithSeparator returns a question/answer type using a custom
// separator token.
func NewQAWithSeparator(separator string) *QA {
	return &QA{separator: separator}
}

// Name implements ItemType.
func (t *QA) Name() string { return "qa" }

// Parse implements ItemType. The text before the separator line is the
// question and the text after is the answer, both trimmed of
// surrounding whitespace; either side being empty is a rejection.
func (t *QA) Parse(raw string) (Content, error) {
	lines := strings.Split(raw, "\n")
	sep := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == t.separator {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, &ContentError{
			TypeName: t.Name(),
			Message:  fmt.Sprintf("missing %q separator line", t.separator),
			Content:  raw,
		}
	}

	question := strings.TrimSpace(strings.Join(lines[:sep], "\n"))
	answer := strings.TrimSpace(strings.Join(lines[sep+1:], "\n"))
	if question == "" {
		return nil, &ContentError{TypeName: t.Name(), Message: "Question is empty", Content: raw}
	}
	if answer == "" {
		return nil, &ContentError{TypeName: t.Name(), Message: "Answer is empty", Content: raw}
	}

	return QAContent{Question: question, Answer: answer}, nil
}

// QAContent is the typed representation of a question/answer item.
type QAContent struct {
	Question string
	Answer   string
}

// Type implements Content.
func (QAContent) Type() string { return "qa" }

// Cards implements Content: exactly one card whose prompt and reveal
// are the question and answer, graded by self-assessment.
func (c QAContent) Cards() []CardSpec {
	return []CardSpec{{
		Prompt:         c.Question,
		Reveal:         c.Answer,
		CardType:       "qa",
		ResponseSchema: SelfAssessmentResponses,
		Grade:          selfGrade,
	}}
}

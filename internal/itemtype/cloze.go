package itemtype

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultClozePlaceholder stands in for hidden text in a cloze prompt
// when the deletion carries no hint.
const DefaultClozePlaceholder = "[...]"

// clozePattern matches one deletion marker: {{cN::text}} or
// {{cN::text::hint}}, with N a positive group number. Markers do not
// span lines.
var clozePattern = regexp.MustCompile(`\{\{c([1-9][0-9]*)::(.*?)\}\}`)

// Cloze is the cloze-deletion item type: the whole content body is the
// typed representation, and each distinct deletion group yields one
// card. Deletions sharing a group number are hidden together on that
// group's card; every other group's text is shown in full.
type Cloze struct {
	placeholder string
}

// NewCloze returns a cloze type using DefaultClozePlaceholder.
func NewCloze() *Cloze {
	return NewClozeWithPlaceholder(DefaultClozePlaceholder)
}

// NewClozeWithPlaceholder returns a cloze type whose hint-less hidden
// spans render as the given placeholder.
func NewClozeWithPlaceholder(placeholder string) *Cloze {
	return &Cloze{placeholder: placeholder}
}

// Name implements ItemType.
func (t *Cloze) Name() string { return "cloze" }

// Parse implements ItemType. Content with no deletion marker is
// rejected; there would be nothing to hide.
func (t *Cloze) Parse(raw string) (Content, error) {
	seen := map[int]bool{}
	var groups []int
	for _, m := range clozePattern.FindAllStringSubmatch(raw, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !seen[n] {
			seen[n] = true
			groups = append(groups, n)
		}
	}
	if len(groups) == 0 {
		return nil, &ContentError{
			TypeName: t.Name(),
			Message:  "no cloze deletions found",
			Content:  raw,
		}
	}
	sort.Ints(groups)
	return ClozeContent{Raw: raw, Groups: groups, placeholder: t.placeholder}, nil
}

// ClozeContent is the typed representation of a cloze item: the raw
// content plus the ascending distinct group numbers found in it.
type ClozeContent struct {
	Raw    string
	Groups []int

	placeholder string
}

// Type implements Content.
func (ClozeContent) Type() string { return "cloze" }

// Cards implements Content: one card per distinct group number, in
// ascending group order. Each card's prompt hides only that group's
// deletions; the reveal is the content with every marker replaced by
// its text.
func (c ClozeContent) Cards() []CardSpec {
	reveal := c.render(0)
	specs := make([]CardSpec, 0, len(c.Groups))
	for _, n := range c.Groups {
		specs = append(specs, CardSpec{
			Prompt:         c.render(n),
			Reveal:         reveal,
			CardType:       "cloze",
			ResponseSchema: SelfAssessmentResponses,
			Grade:          selfGrade,
		})
	}
	return specs
}

// render replaces every deletion marker: hidden groups become the
// placeholder (or "[hint]" when a hint is present), all others their
// text. hide == 0 hides nothing and yields the reveal form.
func (c ClozeContent) render(hide int) string {
	return clozePattern.ReplaceAllStringFunc(c.Raw, func(marker string) string {
		sub := clozePattern.FindStringSubmatch(marker)
		n, _ := strconv.Atoi(sub[1])
		text, hint, _ := strings.Cut(sub[2], "::")
		if hide != 0 && n == hide {
			if hint != "" {
				return "[" + hint + "]"
			}
			return c.placeholder
		}
		return text
	})
}

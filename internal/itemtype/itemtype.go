package itemtype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/scry-deck/internal/deck"
)

// Sentinel errors for the itemtype package.
var (
	// ErrContentParse is returned when a specific item type rejects
	// content. Within the inference chain this is expected control flow
	// (try the next type); it only surfaces to callers who parse with a
	// single type directly.
	ErrContentParse = errors.New("itemtype: content rejected")

	// ErrNoMatchingType is returned when every registered item type has
	// rejected the content.
	ErrNoMatchingType = errors.New("itemtype: no registered type accepts content")
)

// ContentError reports why one item type rejected a content body.
type ContentError struct {
	TypeName string
	Message  string
	Content  string
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrContentParse, e.TypeName, e.Message)
}

func (e *ContentError) Unwrap() error { return ErrContentParse }

// NoMatchError aggregates a full inference failure: the original
// content plus the names of every type that was tried, in registry
// order, for diagnostics.
type NoMatchError struct {
	Content string
	Tried   []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v (tried: %s)", ErrNoMatchingType, strings.Join(e.Tried, ", "))
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatchingType }

// CardSpec is the ephemeral, derived view of one gradable card: what to
// show, what to reveal, and how to turn the user's response into a
// grade. It is consumed by review collaborators and never serialized.
type CardSpec struct {
	Prompt         string
	Reveal         string
	CardType       string
	ResponseSchema []string
	Grade          func(response string) (deck.Grade, error)
}

// SelfAssessmentResponses is the response schema shared by the shipped
// item types: the user grades their own recall on the four-valued
// grade domain.
var SelfAssessmentResponses = []string{"Again", "Hard", "Good", "Easy"}

// selfGrade maps a self-assessment response onto the grade domain.
// It is the identity on valid grade names; scheduling from the grade
// happens elsewhere.
func selfGrade(response string) (deck.Grade, error) {
	var g deck.Grade
	if err := g.UnmarshalText([]byte(response)); err != nil {
		return 0, err
	}
	return g, nil
}

// Content is a typed interpretation of an item's content body, able to
// enumerate the ordered card specifications it yields.
type Content interface {
	// Type names the item type that produced this content.
	Type() string

	// Cards derives the ordered gradable card specifications.
	Cards() []CardSpec
}

// ItemType interprets raw content bodies of one shape.
type ItemType interface {
	// Name is the type's stable name, used in diagnostics and stats.
	Name() string

	// Parse interprets a raw content body, returning *ContentError
	// (unwrapping to ErrContentParse) when the content is not of this
	// type's shape.
	Parse(raw string) (Content, error)
}

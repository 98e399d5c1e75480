package api

import (
	"time"

	"github.com/phrazzld/scry-deck/internal/deck"
	"github.com/phrazzld/scry-deck/internal/itemtype"
	"github.com/phrazzld/scry-deck/internal/service"
)

// CardResponse is the JSON view of one card's scheduling metadata.
// Stability and difficulty carry both the authoritative raw text and
// the parsed value, matching the split the codec maintains.
type CardResponse struct {
	ID            string     `json:"id"`
	Stability     string     `json:"stability"`
	StabilityVal  float64    `json:"stability_value"`
	Difficulty    string     `json:"difficulty"`
	DifficultyVal float64    `json:"difficulty_value"`
	State         deck.State `json:"state"`
	LearningSteps int        `json:"learning_steps"`
	LastReview    *string    `json:"last_review,omitempty"`
}

func newCardResponse(m deck.ItemMetadata) CardResponse {
	resp := CardResponse{
		ID:            m.ID.String(),
		Stability:     m.Stability.Raw,
		StabilityVal:  m.Stability.Value,
		Difficulty:    m.Difficulty.Raw,
		DifficultyVal: m.Difficulty.Value,
		State:         m.State,
		LearningSteps: int(m.LearningSteps),
	}
	if m.LastReview != nil {
		at := deck.FormatTimestamp(*m.LastReview)
		resp.LastReview = &at
	}
	return resp
}

// CardSpecResponse is the JSON view of one derived gradable card.
type CardSpecResponse struct {
	Prompt    string   `json:"prompt"`
	Reveal    string   `json:"reveal"`
	CardType  string   `json:"card_type"`
	Responses []string `json:"responses"`
}

func newCardSpecResponses(specs []itemtype.CardSpec) []CardSpecResponse {
	out := make([]CardSpecResponse, 0, len(specs))
	for _, spec := range specs {
		out = append(out, CardSpecResponse{
			Prompt:    spec.Prompt,
			Reveal:    spec.Reveal,
			CardType:  spec.CardType,
			Responses: spec.ResponseSchema,
		})
	}
	return out
}

// ItemResponse is the JSON view of one deck item.
type ItemResponse struct {
	Cards   []CardResponse     `json:"cards"`
	Content string             `json:"content"`
	Type    string             `json:"type,omitempty"`
	Specs   []CardSpecResponse `json:"specs,omitempty"`
}

// DeckResponse is the JSON view of the whole deck snapshot.
type DeckResponse struct {
	Path     string            `json:"path"`
	LoadedAt time.Time         `json:"loaded_at"`
	Stats    service.DeckStats `json:"stats"`
}

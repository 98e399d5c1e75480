package service

import (
	"github.com/phrazzld/scry-deck/internal/deck"
)

// DeckStats summarizes a parsed deck for the stats command and the
// preview API.
type DeckStats struct {
	Items      int            `json:"items"`
	Cards      int            `json:"cards"`
	ByState    map[string]int `json:"by_state"`
	ByType     map[string]int `json:"by_type"`
	Reviewed   int            `json:"reviewed"`
	Unreviewed int            `json:"unreviewed"`
	Untyped    int            `json:"untyped"`
}

// Stats walks a parsed deck and counts items, cards, card states, and
// inferred item types. Items whose content no registered type accepts
// are counted as untyped rather than failing; Lint reports them.
func (s *DeckService) Stats(f *deck.ParsedFile) DeckStats {
	stats := DeckStats{
		ByState: make(map[string]int),
		ByType:  make(map[string]int),
	}

	for _, item := range f.Items {
		stats.Items++
		for _, card := range item.Cards {
			stats.Cards++
			stats.ByState[card.State.String()]++
			if card.LastReview != nil {
				stats.Reviewed++
			} else {
				stats.Unreviewed++
			}
		}

		inferred, err := s.registry.Infer(item.Content)
		if err != nil {
			stats.Untyped++
			continue
		}
		stats.ByType[inferred.Type.Name()]++
	}
	return stats
}

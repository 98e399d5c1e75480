package itemtype

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-deck/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQAParse(t *testing.T) {
	qa := NewQA()

	c, err := qa.Parse("What is 2+2?\n---\n4")
	require.NoError(t, err)

	content, ok := c.(QAContent)
	require.True(t, ok)
	assert.Equal(t, "What is 2+2?", content.Question)
	assert.Equal(t, "4", content.Answer)
}

func TestQAParseTrimsWhitespace(t *testing.T) {
	qa := NewQA()

	c, err := qa.Parse("\n  What is 2+2?  \n\n---\n\n  4  \n")
	require.NoError(t, err)

	content := c.(QAContent)
	assert.Equal(t, "What is 2+2?", content.Question)
	assert.Equal(t, "4", content.Answer)
}

func TestQAParseMultilineSides(t *testing.T) {
	qa := NewQA()

	c, err := qa.Parse("Name the two largest planets.\nHint: gas giants.\n---\nJupiter\nSaturn")
	require.NoError(t, err)

	content := c.(QAContent)
	assert.Equal(t, "Name the two largest planets.\nHint: gas giants.", content.Question)
	assert.Equal(t, "Jupiter\nSaturn", content.Answer)
}

func TestQAParseOnlyFirstSeparatorSplits(t *testing.T) {
	qa := NewQA()

	c, err := qa.Parse("Q\n---\nA\n---\nstill the answer")
	require.NoError(t, err)

	content := c.(QAContent)
	assert.Equal(t, "Q", content.Question)
	assert.Equal(t, "A\n---\nstill the answer", content.Answer)
}

func TestQAParseRejections(t *testing.T) {
	qa := NewQA()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"no separator", "just some text with no split", "separator"},
		{"empty question", "\n---\nParis", "Question"},
		{"empty answer", "What is 2+2?\n---\n  \n", "Answer"},
		{"separator only", "---", "Question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := qa.Parse(tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentParse))

			var ce *ContentError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "qa", ce.TypeName)
			assert.Contains(t, ce.Message, tt.wantMsg)
			assert.Equal(t, tt.content, ce.Content)
		})
	}
}

func TestQACards(t *testing.T) {
	qa := NewQA()

	c, err := qa.Parse("What is 2+2?\n---\n4")
	require.NoError(t, err)

	cards := c.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "What is 2+2?", cards[0].Prompt)
	assert.Equal(t, "4", cards[0].Reveal)
	assert.Equal(t, "qa", cards[0].CardType)
	assert.Equal(t, SelfAssessmentResponses, cards[0].ResponseSchema)

	// Grading is the identity on the four-valued grade domain.
	g, err := cards[0].Grade("Good")
	require.NoError(t, err)
	assert.Equal(t, deck.GradeGood, g)

	_, err = cards[0].Grade("Flawless")
	assert.Error(t, err)
}

func TestQACustomSeparator(t *testing.T) {
	qa := NewQAWithSeparator("===")

	c, err := qa.Parse("Q\n===\nA")
	require.NoError(t, err)
	assert.Equal(t, "Q", c.(QAContent).Question)

	_, err = qa.Parse("Q\n---\nA")
	assert.Error(t, err)
}

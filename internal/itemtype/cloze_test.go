package itemtype

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClozeParseSingleGroup(t *testing.T) {
	cloze := NewCloze()

	c, err := cloze.Parse("The capital of France is {{c1::Paris}}.")
	require.NoError(t, err)

	content := c.(ClozeContent)
	assert.Equal(t, []int{1}, content.Groups)

	cards := content.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "The capital of France is [...].", cards[0].Prompt)
	assert.Equal(t, "The capital of France is Paris.", cards[0].Reveal)
	assert.Equal(t, "cloze", cards[0].CardType)
}

func TestClozeParseMultipleGroups(t *testing.T) {
	cloze := NewCloze()

	c, err := cloze.Parse("{{c2::Paris}} is the capital of {{c1::France}}.")
	require.NoError(t, err)

	content := c.(ClozeContent)
	// One card per distinct group, ascending group order.
	assert.Equal(t, []int{1, 2}, content.Groups)

	cards := content.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Paris is the capital of [...].", cards[0].Prompt)
	assert.Equal(t, "[...] is the capital of France.", cards[1].Prompt)
	for _, card := range cards {
		assert.Equal(t, "Paris is the capital of France.", card.Reveal)
	}
}

func TestClozeTiedDeletionsHideTogether(t *testing.T) {
	cloze := NewCloze()

	c, err := cloze.Parse("{{c1::Mitochondria}} make ATP; {{c1::mitochondria}} have their own DNA, unlike {{c2::ribosomes}}.")
	require.NoError(t, err)

	cards := c.Cards()
	require.Len(t, cards, 2)

	// Both c1 spans are hidden on card 1 while c2's text stays visible.
	assert.Equal(t, "[...] make ATP; [...] have their own DNA, unlike ribosomes.", cards[0].Prompt)
	assert.Equal(t, "Mitochondria make ATP; mitochondria have their own DNA, unlike [...].", cards[1].Prompt)
}

func TestClozeHints(t *testing.T) {
	cloze := NewCloze()

	c, err := cloze.Parse("Water boils at {{c1::100::temperature}} degrees.")
	require.NoError(t, err)

	cards := c.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "Water boils at [temperature] degrees.", cards[0].Prompt)
	assert.Equal(t, "Water boils at 100 degrees.", cards[0].Reveal)
}

func TestClozeRepeatedGroupCountsOnce(t *testing.T) {
	cloze := NewCloze()

	c, err := cloze.Parse("{{c3::a}} {{c3::b}} {{c3::c}}")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, c.(ClozeContent).Groups)
	assert.Len(t, c.Cards(), 1)
}

func TestClozeParseRejectsMarkerlessContent(t *testing.T) {
	cloze := NewCloze()

	for _, raw := range []string{
		"plain text with nothing hidden",
		"{{c0::zero is not a valid group}}",
		"{{cx::not a number}}",
		"almost {{c1:single colon}} marker",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := cloze.Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentParse))

			var ce *ContentError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "cloze", ce.TypeName)
			assert.Equal(t, raw, ce.Content)
		})
	}
}

func TestClozeCustomPlaceholder(t *testing.T) {
	cloze := NewClozeWithPlaceholder("____")

	c, err := cloze.Parse("{{c1::hidden}} text")
	require.NoError(t, err)
	assert.Equal(t, "____ text", c.Cards()[0].Prompt)
}

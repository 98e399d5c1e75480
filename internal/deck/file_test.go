package deck

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `# Geography

Notes before the first card are preserved verbatim.

<!--@ card-1 5.20 6.33 2 0 2025-01-04T10:30:00.000Z-->
What is the capital of France?
---
Paris

<!--@ card-2 0 0 0 0-->
What is 2+2?
---
4
`

func TestParseFileStructure(t *testing.T) {
	f, err := ParseFile(sampleDeck)
	require.NoError(t, err)

	assert.Equal(t, "# Geography\n\nNotes before the first card are preserved verbatim.\n\n", f.Preamble)
	require.Len(t, f.Items, 2)

	first := f.Items[0]
	require.Len(t, first.Cards, 1)
	assert.Equal(t, ItemID("card-1"), first.Cards[0].ID)
	assert.Equal(t, "5.20", first.Cards[0].Stability.Raw)
	assert.Equal(t, "What is the capital of France?\n---\nParis\n\n", first.Content)

	second := f.Items[1]
	require.Len(t, second.Cards, 1)
	assert.Nil(t, second.Cards[0].LastReview)
	assert.Equal(t, "What is 2+2?\n---\n4\n", second.Content)
}

func TestSerializeFileByteExact(t *testing.T) {
	f, err := ParseFile(sampleDeck)
	require.NoError(t, err)
	assert.Equal(t, sampleDeck, SerializeFile(f))
}

func TestParseSerializeRoundTrip(t *testing.T) {
	f, err := ParseFile(sampleDeck)
	require.NoError(t, err)

	again, err := ParseFile(SerializeFile(f))
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestParseFileMultiCardItem(t *testing.T) {
	const doc = "<!--@ card-a 0 0 0 0-->\n" +
		"<!--@ card-b 2.5 6.1 1 2-->\n" +
		"The capital of {{c1::France}} is {{c2::Paris}}.\n"

	f, err := ParseFile(doc)
	require.NoError(t, err)
	require.Len(t, f.Items, 1)
	require.Len(t, f.Items[0].Cards, 2)
	assert.Equal(t, ItemID("card-a"), f.Items[0].Cards[0].ID)
	assert.Equal(t, ItemID("card-b"), f.Items[0].Cards[1].ID)
	assert.Equal(t, doc, SerializeFile(f))
}

func TestParseFileCRLF(t *testing.T) {
	const doc = "preamble\r\n<!--@ card-1 0 0 0 0-->\r\nQ\r\n---\r\nA\r\n"

	f, err := ParseFile(doc)
	require.NoError(t, err)
	require.Len(t, f.Items, 1)
	assert.Equal(t, ItemID("card-1"), f.Items[0].Cards[0].ID)

	// The CRLF convention survives re-serialization.
	assert.Equal(t, doc, SerializeFile(f))
}

func TestParseFileNoTrailingNewline(t *testing.T) {
	const doc = "<!--@ card-1 0 0 0 0-->"

	f, err := ParseFile(doc)
	require.NoError(t, err)
	require.Len(t, f.Items, 1)
	assert.Empty(t, f.Items[0].Content)
	assert.Equal(t, doc, SerializeFile(f))
}

func TestParseFileEmptyAndPreambleOnly(t *testing.T) {
	f, err := ParseFile("")
	require.NoError(t, err)
	assert.Empty(t, f.Preamble)
	assert.Empty(t, f.Items)

	f, err = ParseFile("just notes\nno cards here\n")
	require.NoError(t, err)
	assert.Equal(t, "just notes\nno cards here\n", f.Preamble)
	assert.Empty(t, f.Items)
	assert.Equal(t, "just notes\nno cards here\n", SerializeFile(f))
}

func TestParseFileMalformedMetadataFailsWholeFile(t *testing.T) {
	const doc = "<!--@ card-1 0 0 0 0-->\nfine\n<!--@ card-2 bogus 0 0 0-->\nbroken\n"

	_, err := ParseFile(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFieldValue))

	var fe *FieldValueError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Line)
	assert.Equal(t, FieldStability, fe.Field)
}

func TestParseFileTruncatedMetadataLine(t *testing.T) {
	// A line that opens like metadata but never closes must fail the
	// parse rather than be swallowed as content.
	_, err := ParseFile("<!--@ card-1 0 0 0 0\ncontent\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidMetadataFormat))
}

func TestParseFileInvalidUTF8(t *testing.T) {
	_, err := ParseFile("ok line\nbad \xff\xfe byte\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 5, pe.Column)
	assert.Contains(t, pe.Excerpt, "bad ")
}

func TestParseFileLargeDeckRoundTrip(t *testing.T) {
	// 1,000 items alternating between reviewed and never-reviewed cards.
	var b strings.Builder
	b.WriteString("# big deck\n\n")
	for i := 0; i < 1000; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&b, "<!--@ card-%d 3.21 5.40 2 0 2025-01-04T10:30:00.000Z-->\n", i)
		} else {
			fmt.Fprintf(&b, "<!--@ card-%d 0 0 0 0-->\n", i)
		}
		fmt.Fprintf(&b, "Question %d\n---\nAnswer %d\n\n", i, i)
	}
	doc := b.String()

	f, err := ParseFile(doc)
	require.NoError(t, err)
	require.Len(t, f.Items, 1000)
	assert.Equal(t, doc, SerializeFile(f))

	again, err := ParseFile(SerializeFile(f))
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestSerializeFileProgrammaticItems(t *testing.T) {
	f := &ParsedFile{
		Preamble: "# fresh deck\n\n",
		Items: []Item{
			NewItem("Q\n---\nA\n", NewItemMetadataWithID("new-card")),
		},
	}

	out := SerializeFile(f)
	assert.Equal(t, "# fresh deck\n\n<!--@ new-card 0 0 0 0-->\nQ\n---\nA\n", out)

	// The emitted document parses back with the same visible structure.
	parsed, err := ParseFile(out)
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, f.Items[0].Cards, parsed.Items[0].Cards)
	assert.Equal(t, f.Items[0].Content, parsed.Items[0].Content)
}

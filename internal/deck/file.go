package deck

import (
	"strings"
	"unicode/utf8"
)

// Item is one block in a deck file: a run of consecutive metadata lines
// followed by the content body those cards share. One item may own
// several cards (e.g. multiple cloze deletions tracked independently);
// each metadata line corresponds positionally to one entry of Cards.
type Item struct {
	Cards   []ItemMetadata
	Content string

	// eols records the line terminator found after each metadata line,
	// parallel to Cards, so serialization can reproduce a file's CRLF
	// convention (and a missing final newline) byte for byte. Items
	// built programmatically leave it nil and serialize with "\n".
	eols []string
}

// NewItem builds an item from authored content and its card records.
func NewItem(content string, cards ...ItemMetadata) Item {
	return Item{Cards: cards, Content: content}
}

// ParsedFile is a whole deck document: an opaque preamble (front-matter
// and anything else before the first metadata line, preserved verbatim)
// followed by the ordered items. The file owns its items and items own
// their cards and content; nothing holds a back-reference, so equality
// and serialization are plain tree walks.
type ParsedFile struct {
	Preamble string
	Items    []Item
}

// ParseFile splits a document into its preamble and items. An item
// begins at each maximal run of metadata lines; its content is the
// verbatim text up to the next metadata line or end of input. Any
// malformed metadata line fails the whole parse: skipping the item
// would silently drop it from the next serialization, and this format
// is the user's only copy of their data.
func ParseFile(text string) (*ParsedFile, error) {
	if i := firstInvalidUTF8(text); i >= 0 {
		line, col, excerpt := locateByte(text, i)
		return nil, &ParseError{
			Line:    line,
			Column:  col,
			Message: "invalid UTF-8 byte sequence",
			Excerpt: excerpt,
		}
	}

	lines := splitLines(text)
	f := &ParsedFile{}

	i := 0
	var preamble strings.Builder
	for i < len(lines) && !isMetadataLineRaw(lines[i]) {
		preamble.WriteString(lines[i])
		i++
	}
	f.Preamble = preamble.String()

	for i < len(lines) {
		var item Item
		for i < len(lines) && isMetadataLineRaw(lines[i]) {
			bare, eol := splitEOL(lines[i])
			m, err := ParseMetadataLine(bare, i+1)
			if err != nil {
				return nil, err
			}
			item.Cards = append(item.Cards, m)
			item.eols = append(item.eols, eol)
			i++
		}
		var content strings.Builder
		for i < len(lines) && !isMetadataLineRaw(lines[i]) {
			content.WriteString(lines[i])
			i++
		}
		item.Content = content.String()
		f.Items = append(f.Items, item)
	}

	return f, nil
}

// SerializeFile reconstructs the document: preamble verbatim, then each
// item's metadata lines re-encoded through the line codec followed by
// its content verbatim. For a ParsedFile fresh from ParseFile whose
// metadata lines were canonical, the output is byte-identical to the
// input; non-canonical fields (extra spacing, a non-UTC last review)
// come out canonicalized.
func SerializeFile(f *ParsedFile) string {
	var b strings.Builder
	b.WriteString(f.Preamble)
	for _, item := range f.Items {
		for j, card := range item.Cards {
			b.WriteString(FormatMetadataLine(card))
			b.WriteString(itemEOL(item, j))
		}
		b.WriteString(item.Content)
	}
	return b.String()
}

// itemEOL returns the terminator to emit after metadata line j.
func itemEOL(item Item, j int) string {
	if j < len(item.eols) {
		return item.eols[j]
	}
	return "\n"
}

// splitLines splits text into lines, each retaining its terminator.
// The final element has no terminator when the text does not end in a
// newline.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}

// splitEOL separates a raw line into its body and terminator.
func splitEOL(line string) (bare, eol string) {
	if strings.HasSuffix(line, "\n") {
		bare = line[:len(line)-1]
		eol = "\n"
		if strings.HasSuffix(bare, "\r") {
			bare = bare[:len(bare)-1]
			eol = "\r\n"
		}
		return bare, eol
	}
	return line, ""
}

// isMetadataLineRaw classifies a line that still carries its terminator.
func isMetadataLineRaw(line string) bool {
	bare, _ := splitEOL(line)
	return IsMetadataLine(bare)
}

// firstInvalidUTF8 returns the byte offset of the first invalid UTF-8
// sequence in s, or -1 when s is valid.
func firstInvalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// locateByte converts a byte offset into a 1-based line and column plus
// a source excerpt of the surrounding line.
func locateByte(text string, off int) (line, col int, excerpt string) {
	before := text[:off]
	line = 1 + strings.Count(before, "\n")
	start := strings.LastIndexByte(before, '\n') + 1
	col = off - start + 1
	end := strings.IndexByte(text[off:], '\n')
	if end < 0 {
		excerpt = text[start:]
	} else {
		excerpt = text[start : off+end]
	}
	if len(excerpt) > 120 {
		excerpt = excerpt[:120]
	}
	return line, col, excerpt
}

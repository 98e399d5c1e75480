package deck

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ItemID identifies one card's metadata record within a deck file.
// It is a distinct type rather than a bare string so that only values
// produced by NewItemID or ParseItemID flow into places that expect a
// generated identifier. Equality is plain string equality.
type ItemID string

// NewItemID generates a fresh identifier: a fixed-length, URL-safe,
// high-entropy random token. Uniqueness is structural (122 bits of
// randomness), not coordinated; no registry of issued IDs exists, so
// concurrent generation needs no synchronization.
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

// ParseItemID validates a token read from a metadata line. The token
// must be non-empty and free of whitespace; beyond that the format is
// opaque, so files created by older generators keep working.
func ParseItemID(raw string) (ItemID, error) {
	if raw == "" || strings.IndexFunc(raw, unicode.IsSpace) >= 0 {
		return "", &FieldValueError{Value: raw, Grammar: "non-empty token without whitespace"}
	}
	return ItemID(raw), nil
}

// String returns the identifier's textual form.
func (id ItemID) String() string { return string(id) }

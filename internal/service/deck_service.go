package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/scry-deck/internal/deck"
	"github.com/phrazzld/scry-deck/internal/itemtype"
)

// ErrItemNotFound is returned when no card in a parsed deck carries the
// requested identifier.
var ErrItemNotFound = errors.New("service: item not found")

// ErrUnknownItemType is returned when a caller names an item type that
// is not registered.
var ErrUnknownItemType = errors.New("service: unknown item type")

// DeckServiceError is a custom error type for deck service errors.
type DeckServiceError struct {
	Operation string
	Path      string
	Err       error
}

// Error implements the error interface for DeckServiceError.
func (e *DeckServiceError) Error() string {
	return fmt.Sprintf("deck service %s failed for %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DeckServiceError) Unwrap() error {
	return e.Err
}

// DeckService orchestrates deck file operations for the CLI and the
// preview API: it is the layer that actually touches the filesystem,
// keeping the deck and itemtype packages pure.
type DeckService struct {
	registry *itemtype.Registry
	logger   *slog.Logger
}

// NewDeckService creates a DeckService using the given type registry.
func NewDeckService(registry *itemtype.Registry, logger *slog.Logger) *DeckService {
	return &DeckService{registry: registry, logger: logger}
}

// Registry returns the item type registry in use.
func (s *DeckService) Registry() *itemtype.Registry {
	return s.registry
}

// Load reads and parses a deck file.
func (s *DeckService) Load(path string) (*deck.ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DeckServiceError{Operation: "load", Path: path, Err: err}
	}
	f, err := deck.ParseFile(string(data))
	if err != nil {
		return nil, &DeckServiceError{Operation: "load", Path: path, Err: err}
	}
	return f, nil
}

// LintIssue is one diagnostic produced by Lint.
type LintIssue struct {
	Path    string `json:"path"`
	Line    int    `json:"line,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Lint checks one deck file and reports diagnostics instead of failing
// on the first problem. A file that does not parse yields exactly one
// issue (parsing halts at the first malformed item by policy); a file
// that parses is further checked item by item for content no registered
// type accepts. The returned error covers I/O only.
func (s *DeckService) Lint(path string) ([]LintIssue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DeckServiceError{Operation: "lint", Path: path, Err: err}
	}

	f, err := deck.ParseFile(string(data))
	if err != nil {
		return []LintIssue{issueFromError(path, err)}, nil
	}

	var issues []LintIssue
	for i, item := range f.Items {
		if _, err := s.registry.Infer(item.Content); err != nil {
			var nm *itemtype.NoMatchError
			msg := err.Error()
			if errors.As(err, &nm) {
				msg = fmt.Sprintf(
					"item %d: no item type accepts the content (tried %s)",
					i+1, strings.Join(nm.Tried, ", "),
				)
			}
			issues = append(issues, LintIssue{
				Path:    path,
				Kind:    "no-matching-type",
				Message: msg,
			})
		}
	}
	return issues, nil
}

// issueFromError translates a parse failure into a lint diagnostic,
// pulling out the line number the typed errors carry.
func issueFromError(path string, err error) LintIssue {
	issue := LintIssue{Path: path, Message: err.Error()}

	var pe *deck.ParseError
	var me *deck.MetadataFormatError
	var fe *deck.FieldValueError
	switch {
	case errors.As(err, &fe):
		issue.Kind = "invalid-field-value"
		issue.Line = fe.Line
	case errors.As(err, &me):
		issue.Kind = "invalid-metadata-format"
		issue.Line = me.Line
	case errors.As(err, &pe):
		issue.Kind = "parse-error"
		issue.Line = pe.Line
	default:
		issue.Kind = "error"
	}
	return issue
}

// Format canonicalizes a deck file: parse, then serialize. It returns
// the formatted bytes and whether they differ from what is on disk.
// When write is set and the file changed, the formatted form replaces
// the file.
func (s *DeckService) Format(path string, write bool) (formatted string, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, &DeckServiceError{Operation: "format", Path: path, Err: err}
	}

	f, err := deck.ParseFile(string(data))
	if err != nil {
		return "", false, &DeckServiceError{Operation: "format", Path: path, Err: err}
	}

	formatted = deck.SerializeFile(f)
	changed = formatted != string(data)
	if changed && write {
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return "", false, &DeckServiceError{Operation: "format", Path: path, Err: err}
		}
		s.logger.Info("rewrote deck file in canonical form", "path", path)
	}
	return formatted, changed, nil
}

// Skeleton content appended by AppendItem, per item type.
var skeletons = map[string]string{
	"qa":    "Question\n---\nAnswer\n",
	"cloze": "A sentence with a {{c1::hidden}} part.\n",
}

// AppendItem appends a skeleton item of the named type with freshly
// generated metadata to the deck file, creating the file if needed.
// It returns the new card's identifier.
func (s *DeckService) AppendItem(path, typeName string) (deck.ItemID, error) {
	skeleton, ok := skeletons[typeName]
	if !ok {
		return "", &DeckServiceError{
			Operation: "append",
			Path:      path,
			Err:       fmt.Errorf("%w: %q", ErrUnknownItemType, typeName),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", &DeckServiceError{Operation: "append", Path: path, Err: err}
	}

	f, err := deck.ParseFile(string(data))
	if err != nil {
		return "", &DeckServiceError{Operation: "append", Path: path, Err: err}
	}

	// Keep a blank line between the existing tail and the new item.
	if len(f.Items) > 0 {
		last := &f.Items[len(f.Items)-1]
		if last.Content == "" || !strings.HasSuffix(last.Content, "\n") {
			last.Content += "\n"
		}
		if !strings.HasSuffix(last.Content, "\n\n") {
			last.Content += "\n"
		}
	} else if f.Preamble != "" && !strings.HasSuffix(f.Preamble, "\n") {
		f.Preamble += "\n"
	}

	meta := deck.NewItemMetadata()
	f.Items = append(f.Items, deck.NewItem(skeleton, meta))

	if err := os.WriteFile(path, []byte(deck.SerializeFile(f)), 0o644); err != nil {
		return "", &DeckServiceError{Operation: "append", Path: path, Err: err}
	}
	s.logger.Info("appended new item", "path", path, "type", typeName, "id", meta.ID)
	return meta.ID, nil
}

// FindItem locates the item owning the card with the given identifier.
func (s *DeckService) FindItem(f *deck.ParsedFile, id deck.ItemID) (*deck.Item, error) {
	for i := range f.Items {
		for _, card := range f.Items[i].Cards {
			if card.ID == id {
				return &f.Items[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

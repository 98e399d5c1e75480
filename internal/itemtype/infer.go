package itemtype

import "errors"

// Inferred is a successful type inference: the accepting type and the
// typed content it produced.
type Inferred struct {
	Type    ItemType
	Content Content
}

// Registry holds item types in priority order. Order is fixed at
// construction; inference tries types front to back.
type Registry struct {
	types []ItemType
}

// NewRegistry builds a registry trying the given types in order.
func NewRegistry(types ...ItemType) *Registry {
	return &Registry{types: types}
}

// DefaultRegistry registers the shipped types: question/answer first
// (its separator line is unambiguous), then cloze.
func DefaultRegistry() *Registry {
	return NewRegistry(NewQA(), NewCloze())
}

// Types returns the registered types in priority order.
func (r *Registry) Types() []ItemType {
	return r.types
}

// Infer tries each registered type's Parse in order and returns the
// first accepted interpretation. A content rejection advances to the
// next type; that is expected control flow, not an error. Only when
// every type has rejected the content does Infer fail, with a
// *NoMatchError carrying the content and the ordered list of type
// names that were tried.
func (r *Registry) Infer(raw string) (Inferred, error) {
	tried := make([]string, 0, len(r.types))
	for _, t := range r.types {
		content, err := t.Parse(raw)
		if err == nil {
			return Inferred{Type: t, Content: content}, nil
		}
		if !errors.Is(err, ErrContentParse) {
			return Inferred{}, err
		}
		tried = append(tried, t.Name())
	}
	return Inferred{}, &NoMatchError{Content: raw, Tried: tried}
}

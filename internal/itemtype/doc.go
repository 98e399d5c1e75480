// Package itemtype interprets the content body of a deck item. Each
// item type is a small capability that parses raw content into a typed
// representation and derives the gradable card specifications from it.
// Deck files carry no per-item type tag: the registry tries each type
// in a fixed priority order and the first one to accept the content
// wins, so heterogeneous card types coexist in one file purely by
// content shape.
package itemtype

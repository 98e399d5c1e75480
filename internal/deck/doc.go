// Package deck implements the plain-text flashcard deck file format:
// the scheduling-metadata line codec, the whole-file parser/serializer,
// and identifier generation for new items.
//
// A deck file interleaves free-form card content with machine-managed
// metadata comment lines of the form
//
//	<!--@ <id> <stability> <difficulty> <state> <learningSteps> [<lastReview>]-->
//
// Every operation in this package is a pure, synchronous function over
// immutable inputs; nothing here performs I/O. Parsing then serializing
// an unmodified file reproduces the original bytes exactly whenever the
// file's metadata lines are already in canonical form, which is the
// property that lets external editors and the review engine share one
// file without trampling each other's edits.
package deck

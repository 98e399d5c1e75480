// Package service contains the application-specific use cases around
// deck files: loading, linting, canonical formatting, appending new
// items, per-deck statistics, and the file watcher behind the preview
// server. It is the only layer that performs filesystem I/O, keeping
// the deck and itemtype packages pure.
//
// Services receive dependencies through constructor injection and
// translate codec-level errors into diagnostics meaningful to the CLI
// and the preview API.
package service

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const goodDeck = "<!--@ card-1 0 0 0 0-->\nQ\n---\nA\n"

func TestRunUsageErrors(t *testing.T) {
	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"frobnicate"}))
	assert.Equal(t, 2, run([]string{"lint"}))
	assert.Equal(t, 2, run([]string{"stats"}))
	assert.Equal(t, 0, run([]string{"help"}))
}

func TestRunLint(t *testing.T) {
	good := writeDeck(t, goodDeck)
	assert.Equal(t, 0, run([]string{"lint", good}))

	bad := writeDeck(t, "<!--@ card-1 bogus 0 0 0-->\nQ\n---\nA\n")
	assert.Equal(t, 1, run([]string{"lint", bad}))
}

func TestRunFmt(t *testing.T) {
	path := writeDeck(t, "<!--@ card-1 0 0 1 0 2025-01-04T12:30:00+02:00-->\nQ\n---\nA\n")

	// Non-canonical file: check reports it without rewriting.
	assert.Equal(t, 1, run([]string{"fmt", "-check", path}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "+02:00")

	// A write pass canonicalizes, after which check passes.
	assert.Equal(t, 0, run([]string{"fmt", path}))
	assert.Equal(t, 0, run([]string{"fmt", "-check", path}))
}

func TestRunNewAndStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")

	assert.Equal(t, 0, run([]string{"new", "-type", "cloze", path}))
	assert.Equal(t, 0, run([]string{"stats", path}))
	assert.Equal(t, 1, run([]string{"new", "-type", "unknown", path}))
}

func TestRunStatsMissingFile(t *testing.T) {
	assert.Equal(t, 1, run([]string{"stats", filepath.Join(t.TempDir(), "absent.md")}))
}

// Command deckctl is the toolchain for plain-text flashcard deck files:
// it lints, canonicalizes, summarizes, and extends decks, and serves a
// read-only preview API over one deck file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-deck/internal/config"
	"github.com/phrazzld/scry-deck/internal/itemtype"
	"github.com/phrazzld/scry-deck/internal/platform/logger"
	"github.com/phrazzld/scry-deck/internal/service"
)

const usageText = `usage: deckctl <command> [flags] [arguments]

Commands:
  lint   FILE...          check deck files and report diagnostics
  fmt    [-check] FILE... rewrite deck files in canonical form
  stats  FILE             print per-deck counts as JSON
  new    [-type T] FILE   append a skeleton item (types: qa, cloze)
  serve  [-watch] FILE    serve a read-only preview API

Configuration comes from scry-deck.yaml and SCRY_DECK_* environment
variables (SCRY_DECK_SERVER_PORT, SCRY_DECK_SERVER_LOG_LEVEL, ...).
`

func main() {
	os.Exit(run(os.Args[1:]))
}

// run wires configuration, logging, and the deck service, then
// dispatches to the named command. It returns the process exit code:
// 0 on success, 1 when a command finds problems or fails, 2 on usage
// errors.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usageText)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckctl: %v\n", err)
		return 1
	}

	log := logger.Setup(cfg.Server)

	registry := itemtype.NewRegistry(
		itemtype.NewQAWithSeparator(cfg.Deck.QASeparator),
		itemtype.NewClozeWithPlaceholder(cfg.Deck.ClozePlaceholder),
	)
	svc := service.NewDeckService(registry, log)

	app := &application{config: cfg, logger: log, svc: svc}

	switch args[0] {
	case "lint":
		return app.runLint(args[1:])
	case "fmt":
		return app.runFmt(args[1:])
	case "stats":
		return app.runStats(args[1:])
	case "new":
		return app.runNew(args[1:])
	case "serve":
		return app.runServe(args[1:])
	case "help", "-h", "--help":
		fmt.Print(usageText)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "deckctl: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

// application bundles the dependencies every command needs.
type application struct {
	config *config.Config
	logger *slog.Logger
	svc    *service.DeckService
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// runLint checks each file and prints one line per diagnostic. The
// exit code is 1 when any file has issues, so the command works as a
// pre-commit hook.
func (app *application) runLint(args []string) int {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "deckctl lint: at least one file required")
		return 2
	}

	exit := 0
	for _, path := range fs.Args() {
		issues, err := app.svc.Lint(path)
		if err != nil {
			app.logger.Error("lint failed", "path", path, "error", err)
			exit = 1
			continue
		}
		for _, issue := range issues {
			if issue.Line > 0 {
				fmt.Printf("%s:%d: %s: %s\n", issue.Path, issue.Line, issue.Kind, issue.Message)
			} else {
				fmt.Printf("%s: %s: %s\n", issue.Path, issue.Kind, issue.Message)
			}
			exit = 1
		}
	}
	return exit
}

// runFmt rewrites files in canonical form. With -check nothing is
// written; files that would change are listed and the exit code is 1.
func (app *application) runFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	check := fs.Bool("check", false, "report files that are not canonical without rewriting them")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "deckctl fmt: at least one file required")
		return 2
	}

	exit := 0
	for _, path := range fs.Args() {
		_, changed, err := app.svc.Format(path, !*check)
		if err != nil {
			app.logger.Error("fmt failed", "path", path, "error", err)
			exit = 1
			continue
		}
		if changed && *check {
			fmt.Println(path)
			exit = 1
		}
	}
	return exit
}

// runStats prints one deck's counts as indented JSON on stdout.
func (app *application) runStats(args []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "deckctl stats: exactly one file required")
		return 2
	}

	path := fs.Arg(0)
	f, err := app.svc.Load(path)
	if err != nil {
		app.logger.Error("stats failed", "path", path, "error", err)
		return 1
	}

	out, err := json.MarshalIndent(app.svc.Stats(f), "", "  ")
	if err != nil {
		app.logger.Error("stats encoding failed", "path", path, "error", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// runNew appends a skeleton item with fresh metadata and prints the new
// card's identifier, for editor integrations to pick up.
func (app *application) runNew(args []string) int {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	typeName := fs.String("type", "qa", "item type of the skeleton (qa or cloze)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "deckctl new: exactly one file required")
		return 2
	}

	id, err := app.svc.AppendItem(fs.Arg(0), *typeName)
	if err != nil {
		app.logger.Error("new item failed", "path", fs.Arg(0), "error", err)
		return 1
	}
	fmt.Println(id)
	return 0
}

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/scry-deck/internal/api"
	"github.com/phrazzld/scry-deck/internal/service"
)

// runServe starts the read-only preview server over one deck file.
// With -watch, file changes on disk are picked up while serving.
func (app *application) runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "reload the deck file when it changes on disk")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "deckctl serve: exactly one file required")
		return 2
	}

	watcher, err := service.NewWatcher(app.svc, fs.Arg(0), app.logger)
	if err != nil {
		app.logger.Error("initial deck load failed", "path", fs.Arg(0), "error", err)
		return 1
	}

	handler := api.NewDeckHandler(watcher, app.svc, app.logger)
	if err := app.startHTTPServer(watcher, *watch, api.NewRouter(handler)); err != nil {
		app.logger.Error("server failed", "error", err)
		return 1
	}
	return 0
}

// startHTTPServer runs the HTTP server with graceful shutdown support,
// optionally alongside the file watcher. It blocks until SIGINT or
// SIGTERM, then drains in-flight requests.
func (app *application) startHTTPServer(watcher *service.Watcher, watch bool, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	serverCtx, cancelServer := context.WithCancel(context.Background())
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	if watch {
		go func() {
			if err := watcher.Watch(serverCtx); err != nil && serverCtx.Err() == nil {
				app.logger.Error("file watcher stopped", "error", err)
			}
		}()
	}

	go func() {
		app.logger.Info("starting preview server",
			"port", app.config.Server.Port,
			"watch", watch)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("shutting down server")
	case <-serverCtx.Done():
		app.logger.Info("server context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("server shutdown completed")
	return nil
}

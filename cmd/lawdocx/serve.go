package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/lawdesk/lawdocx/internal/api"
	"github.com/lawdesk/lawdocx/internal/config"
	"github.com/lawdesk/lawdocx/internal/history"
)

// runServe starts the HTTP extraction service. Configuration comes from
// LAWDOCX_* environment variables, with a .env file loaded first when
// present.
func runServe(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var envFile string
	fs.StringVar(&envFile, "env-file", ".env", "environment file to load before reading config")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	// A missing .env file is fine; explicit files must exist.
	if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
		fmt.Fprintf(stderr, "lawdocx: loading %s: %v\n", envFile, err)
		return exitError
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "lawdocx: invalid configuration: %v\n", err)
		return exitError
	}

	level, _ := cfg.SlogLevel()
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	var hist *history.Store
	if cfg.HistoryDB != "" {
		var err error
		hist, err = history.Open(cfg.HistoryDB)
		if err != nil {
			log.Error("opening history database", "path", cfg.HistoryDB, "error", err)
			return exitError
		}
		defer hist.Close()
	}

	srv := api.NewServer(log, cfg, hist)
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting lawdocx service", "addr", cfg.Addr, "auth", cfg.APIKey != "", "history", cfg.HistoryDB != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return exitError
	}
	return exitOK
}

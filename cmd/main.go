package main

import (
	"chat-relay/delivery"
	"chat-relay/directory"
	"chat-relay/internal"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/services"
	"chat-relay/transport"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and manages the server lifecycle. Keeping
// the wiring here, behind a returned error, ensures deferred cleanup (the
// badger close in particular) runs on every exit path and keeps main
// testable.
func run() error {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Record store (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core wiring: store -> directory -> delivery -> handler.
	// Everything is constructed once and passed down; no package-level
	// state anywhere.
	store := repositories.NewBadgerRecordStore(db, config.RecordTTL, log)
	dir := directory.NewDirectory(store, log)
	registry := transport.NewRegistry()
	sender := delivery.NewSender(registry, dir, log)

	maskRune, err := config.MaskRune()
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.WordList(), maskRune)
	if err != nil {
		return fmt.Errorf("building moderator: %w", err)
	}

	handler := services.NewHandler(dir, sender, moderator, log)
	metrics := observability.NewChatMetrics()
	server := transport.NewServer(handler, registry, metrics, log)

	// 4. Diagnostics (out of chat semantics, best-effort)
	internal.StartDebugServer(db, config.DebugPort, metrics.Snapshot, log)

	// 5. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Serve until stop
	if err := server.Listen(fmt.Sprintf("%s:%d", config.Host, config.Port)); err != nil {
		return err
	}
	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("Program stopped cleanly")
	return nil
}

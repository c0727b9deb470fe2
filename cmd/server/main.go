package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"pairup/auth"
	"pairup/contract"
	"pairup/infrastructure/rest"
	"pairup/infrastructure/ws"
	"pairup/internal"
	"pairup/repositories"
	"pairup/runtime"
	"pairup/runtime/workers"
	"pairup/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Core state & services
	registry := runtime.NewRegistry()
	pool := runtime.NewWaitingPool()
	sessionRepository := repositories.NewSessionRepository(db, log, config.LimitHistory)
	topicRepository := repositories.NewTopicRepository(db, log)
	relay := runtime.NewRelay(registry, sessionRepository, log)

	notifications := make(chan contract.Notification, config.BufferSize)
	matcher := services.NewMatchService(topicRepository, sessionRepository, pool, relay, notifications, log)

	tokens := auth.NewTokenService(config.JWTSecret, config.TokenDuration)

	// 4. Supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewNotifierWorker(registry, notifications, log))
	sup.Add(workers.NewSweepWorker(registry, relay, pool, config.SweepInterval, config.IdleThreshold, log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 5. Transports
	wsHandler := ws.NewHandler(tokens, registry, relay, matcher,
		config.SendBufferSize, config.ReclaimGrace, log)
	handlers := rest.NewHandlers(matcher, topicRepository, tokens, log)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := rest.NewServer(log, address, tokens, handlers, wsHandler)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting server", "address", address, "at", time.Now().UTC())
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Warn("server shutdown failed", "error", err)
	}
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

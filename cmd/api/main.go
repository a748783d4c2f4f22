package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oregontales/roadtrip/internal/auth"
	"github.com/oregontales/roadtrip/internal/config"
	"github.com/oregontales/roadtrip/internal/handlers"
	"github.com/oregontales/roadtrip/internal/logger"
	"github.com/oregontales/roadtrip/internal/services/events"
	"github.com/oregontales/roadtrip/internal/storage"
	"github.com/oregontales/roadtrip/pkg/engine"
	"github.com/oregontales/roadtrip/pkg/world"
)

func main() {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Oregon Tales API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL)

	store := storage.NewRedisStorage(cfg.RedisURL, log)

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	// An authored world file overrides whatever is in storage for this
	// process; otherwise the world comes from storage with stock data
	// as the fallback.
	var w *world.World
	if cfg.WorldFile != "" {
		wf, err := world.LoadFile(cfg.WorldFile)
		if err != nil {
			log.Error("Failed to load world file", "path", cfg.WorldFile, "error", err)
			os.Exit(1)
		}
		w = wf.World()
		log.Info("World loaded from file", "path", cfg.WorldFile, "locations", len(w.Locations))
	} else {
		w = storage.LoadWorld(storageCtx, store, log)
	}

	sessions := engine.NewManager(w, store, log, nil)
	broadcaster := events.NewBroadcaster(store.Client(), log)
	authorizer := auth.NewLocalAuthorizer()

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	gameHandler := handlers.NewGameHandler(sessions, broadcaster, log)
	mux.Handle("/v1/game", gameHandler)
	mux.Handle("/v1/game/", gameHandler)

	adminHandler := handlers.NewAdminHandler(store, sessions, authorizer, log)
	mux.Handle("/v1/admin/", adminHandler)

	eventsHandler := handlers.NewEventsHandler(store.Client(), log)
	mux.Handle("/v1/events/game/", eventsHandler)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// WriteTimeout stays unset so SSE streams are not cut off.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/breadcrumb/internal/config"
	"github.com/jwebster45206/breadcrumb/internal/handlers"
	"github.com/jwebster45206/breadcrumb/internal/logger"
	"github.com/jwebster45206/breadcrumb/internal/middleware"
	"github.com/jwebster45206/breadcrumb/internal/storage"
	"github.com/jwebster45206/breadcrumb/pkg/engine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Breadcrumb API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"world_dir", cfg.WorldDir)

	eng, err := engine.NewFromDir(cfg.WorldDir)
	if err != nil {
		log.Error("Failed to load world", "error", err, "world_dir", cfg.WorldDir)
		os.Exit(1)
	}
	log.Info("World loaded", "world_id", eng.World().WorldID, "rooms", len(eng.World().Rooms))

	store := storage.NewRedisStore(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to session store", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, log)
	mux.Handle("/health", healthHandler)

	commandHandler := handlers.NewCommandHandler(eng, store, log, cfg.ChallengePoints)
	mux.Handle("/v1/command", commandHandler)

	handler := middleware.Logger(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
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
		log.Error("Error closing session store", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chatkarma/chatkarma/internal/config"
	"github.com/chatkarma/chatkarma/internal/database"
	"github.com/chatkarma/chatkarma/internal/logging"
	"github.com/chatkarma/chatkarma/internal/messages"
	"github.com/chatkarma/chatkarma/internal/scoring"
	"github.com/chatkarma/chatkarma/internal/server"
	"github.com/chatkarma/chatkarma/internal/slack"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	return pool
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	pool := setupDB(cfg)
	defer pool.Close()

	store := database.NewScoreRepo(pool)
	messenger := slack.NewClient(cfg.SlackBotToken)
	picker := messages.NewPicker()

	commands := map[string]scoring.CommandFunc{
		"leaderboard": scoring.NewLeaderboardCommand(store, messenger, picker),
	}
	handler := scoring.NewHandler(store, messenger, picker, commands)

	dedup := server.NewDeduper(cfg.DedupCacheSize, cfg.DedupTTL)
	srv := server.NewServer(cfg, handler, dedup, pool)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

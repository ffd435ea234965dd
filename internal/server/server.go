package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/chatkarma/chatkarma/internal/config"
	"github.com/chatkarma/chatkarma/internal/domain"
)

// EventHandler drives the scoring pipeline for one validated event.
// Implemented by scoring.Handler.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev domain.Event) (bool, error)
}

// Pinger checks datastore connectivity for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	handler EventHandler
	dedup   *Deduper
	db      Pinger

	startTime time.Time
}

func NewServer(cfg *config.Config, handler EventHandler, dedup *Deduper, db Pinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:      e,
		cfg:       cfg,
		handler:   handler,
		dedup:     dedup,
		db:        db,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.cfg.Port)
	if err := s.echo.Start(":" + s.cfg.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

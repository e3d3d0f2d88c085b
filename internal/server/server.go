package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/teampulse/internal/domain"
	"github.com/pscheid92/teampulse/internal/identity"
	"github.com/pscheid92/teampulse/internal/platform/config"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app      domain.MoodService
	identity *identity.Resolver

	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app domain.MoodService, resolver *identity.Resolver, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		identity:     resolver,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
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

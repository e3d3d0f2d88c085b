package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/teampulse/internal/domain"
	"github.com/pscheid92/teampulse/internal/identity"
	"github.com/pscheid92/teampulse/internal/platform/config"
)

// --- Mock implementations ---

type mockMoodService struct {
	submitFn  func(ctx context.Context, mood domain.MoodLevel, userID, comment string) error
	overallFn func(ctx context.Context) (domain.TeamMoodSummary, error)
}

func (m *mockMoodService) Submit(ctx context.Context, mood domain.MoodLevel, userID, comment string) error {
	if m.submitFn != nil {
		return m.submitFn(ctx, mood, userID, comment)
	}
	return errors.New("not implemented")
}

func (m *mockMoodService) Overall(ctx context.Context) (domain.TeamMoodSummary, error) {
	if m.overallFn != nil {
		return m.overallFn(ctx)
	}
	return domain.TeamMoodSummary{Comments: []string{}}, nil
}

// --- Test server setup ---

func newTestServer(t *testing.T, app domain.MoodService, opts ...func(*Server)) *Server {
	t.Helper()

	resolver := identity.NewResolver("test-secret-key-32-bytes-long!!!", time.Hour, false)

	srv := &Server{
		echo:     echo.New(),
		config:   &config.Config{Port: "8080", SubmitRatePerSecond: 100, SubmitRateBurst: 100},
		app:      app,
		identity: resolver,
	}

	for _, opt := range opts {
		opt(srv)
	}

	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}

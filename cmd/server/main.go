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
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/teampulse/internal/database"
	"github.com/pscheid92/teampulse/internal/identity"
	"github.com/pscheid92/teampulse/internal/metrics"
	"github.com/pscheid92/teampulse/internal/mood"
	"github.com/pscheid92/teampulse/internal/platform/config"
	"github.com/pscheid92/teampulse/internal/platform/logging"
	"github.com/pscheid92/teampulse/internal/platform/retry"
	"github.com/pscheid92/teampulse/internal/platform/version"
	"github.com/pscheid92/teampulse/internal/redis"
	"github.com/pscheid92/teampulse/internal/server"
	goredis "github.com/redis/go-redis/v9"
)

var startupRetryPolicy = retry.Policy{
	MaxAttempts:    5,
	InitialBackoff: time.Second,
	OnRetry: func(attempt int, err error, backoff time.Duration) {
		slog.Warn("Startup connection failed, retrying", "attempt", attempt, "backoff", backoff, "error", err)
	},
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(ctx context.Context, cfg *config.Config) *pgxpool.Pool {
	pool, err := retry.Do(ctx, startupRetryPolicy, func() (*pgxpool.Pool, error) {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return database.Connect(connectCtx, cfg.DatabaseURL)
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := database.RunMigrations(migrateCtx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := retry.Do(ctx, startupRetryPolicy, func() (*goredis.Client, error) {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return redis.NewClient(connectCtx, cfg.RedisURL)
	})
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
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
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	info := version.Get()
	metrics.BuildInfo.WithLabelValues(info.Version, info.Commit, info.BuildTime, info.GoVersion).Set(1)

	ctx := context.Background()

	pool := setupDB(ctx, cfg)
	defer pool.Close()

	redisClient := setupRedis(ctx, cfg)
	defer func() { _ = redisClient.Close() }()

	guard := redis.NewSubmissionGuard(redisClient, clock)
	subs := database.NewSubmissionRepo(pool, clock)
	moodSvc := mood.NewService(subs, guard, clock)

	resolver := identity.NewResolver(cfg.IdentitySecret, cfg.IdentityMaxAge, cfg.AppEnv == "production")

	healthChecks := []server.HealthCheck{
		{Name: "postgres", Check: pool.Ping},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
	}

	srv := server.NewServer(cfg, moodSvc, resolver, healthChecks)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

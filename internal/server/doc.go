// Package server implements the HTTP server using Echo framework.
//
// Routes: mood submission and aggregation under /api/mood, health probes
// under /health, plus /metrics and /version.
// Handlers split by domain: handlers_mood.go, handlers_health.go.
package server

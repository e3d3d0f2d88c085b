// Package database provides PostgreSQL connectivity and the durable
// submission store.
//
// Uses pgx for connection pooling. The mood_submissions table carries a
// unique index on (user_id, submitted_at::date) so the one-per-day rule
// holds even when two submissions race past the service's exists check.
package database

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/teampulse/internal/domain"
	"github.com/pscheid92/teampulse/internal/metrics"
)

// uniqueViolation is the SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// SubmissionRepo implements domain.SubmissionRepository backed by PostgreSQL.
type SubmissionRepo struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

// NewSubmissionRepo creates a SubmissionRepo from the shared pool.
func NewSubmissionRepo(pool *pgxpool.Pool, clock clockwork.Clock) *SubmissionRepo {
	return &SubmissionRepo{pool: pool, clock: clock}
}

// Insert persists one submission and returns the store-assigned id. A unique
// violation on (user_id, submitted_at::date) is reported as
// domain.ErrDuplicateSubmission.
func (r *SubmissionRepo) Insert(ctx context.Context, sub *domain.Submission) (int64, error) {
	defer r.observe("insert_submission")()

	var comment *string
	if sub.Comment != "" {
		comment = &sub.Comment
	}

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO mood_submissions (mood, comment, user_id, submitted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, string(sub.Mood), comment, sub.UserID, sub.SubmittedAt).Scan(&id)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return 0, domain.ErrDuplicateSubmission
	}
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("insert_submission").Inc()
		return 0, fmt.Errorf("failed to insert submission: %w", err)
	}

	sub.ID = id
	return id, nil
}

// ExistsByUserInWindow reports whether the user already has a submission
// inside the window.
func (r *SubmissionRepo) ExistsByUserInWindow(ctx context.Context, userID string, window domain.DayWindow) (bool, error) {
	defer r.observe("exists_submission")()

	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM mood_submissions
			WHERE user_id = $1 AND submitted_at >= $2 AND submitted_at < $3
		)
	`, userID, window.Start, window.End).Scan(&exists)
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("exists_submission").Inc()
		return false, fmt.Errorf("failed to check submission existence: %w", err)
	}
	return exists, nil
}

// ListInWindow returns every submission inside the window in natural result
// order. Callers must not rely on that order beyond stability within one
// query.
func (r *SubmissionRepo) ListInWindow(ctx context.Context, window domain.DayWindow) ([]domain.Submission, error) {
	defer r.observe("list_submissions")()

	rows, err := r.pool.Query(ctx, `
		SELECT id, mood, COALESCE(comment, ''), user_id, submitted_at
		FROM mood_submissions
		WHERE submitted_at >= $1 AND submitted_at < $2
	`, window.Start, window.End)
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("list_submissions").Inc()
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	subs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		var sub domain.Submission
		var mood string
		if err := row.Scan(&sub.ID, &mood, &sub.Comment, &sub.UserID, &sub.SubmittedAt); err != nil {
			return domain.Submission{}, err
		}
		sub.Mood = domain.MoodLevel(mood)
		return sub, nil
	})
	if err != nil {
		metrics.DBErrorsTotal.WithLabelValues("list_submissions").Inc()
		return nil, fmt.Errorf("failed to scan submissions: %w", err)
	}
	return subs, nil
}

func (r *SubmissionRepo) observe(query string) func() {
	start := r.clock.Now()
	return func() {
		metrics.DBQueryDuration.WithLabelValues(query).Observe(r.clock.Since(start).Seconds())
	}
}

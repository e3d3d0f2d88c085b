package domain

import (
	"context"
	"time"
)

// MaxCommentLength is the hard cap on submission comments, enforced again at
// the service layer as the last check before persistence.
const MaxCommentLength = 350

// --- Model types ---

// Submission is one user's mood record for a moment in time. Immutable once
// persisted; there is no update or delete path.
type Submission struct {
	ID          int64     `db:"id"`
	Mood        MoodLevel `db:"mood"`
	Comment     string    `db:"comment"` // "" means no comment
	UserID      string    `db:"user_id"`
	SubmittedAt time.Time `db:"submitted_at"`
}

// TeamMoodSummary is the aggregate of a day's submissions. OverallMood is nil
// when the day has no submissions. Recomputed on every query, never stored.
type TeamMoodSummary struct {
	OverallMood *MoodLevel `json:"overallMood"`
	Comments    []string   `json:"comments"`
}

// --- Interfaces ---

// SubmissionRepository is the durable submission store. Insert must enforce
// at-most-one submission per (user, calendar day) atomically and report a
// violation as ErrDuplicateSubmission; the service's exists check alone is
// not race-safe.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *Submission) (int64, error)
	ExistsByUserInWindow(ctx context.Context, userID string, window DayWindow) (bool, error)
	ListInWindow(ctx context.Context, window DayWindow) ([]Submission, error)
}

// SubmissionGuard serializes concurrent submissions from the same user within
// one day window before the store is touched. Acquire returns false when the
// slot is already held. Release frees the slot after a failed write so the
// user's day is not burned by a storage fault.
type SubmissionGuard interface {
	Acquire(ctx context.Context, userID string, window DayWindow) (bool, error)
	Release(ctx context.Context, userID string, window DayWindow) error
}

// MoodService is the application contract the HTTP layer consumes.
type MoodService interface {
	Submit(ctx context.Context, mood MoodLevel, userID, comment string) error
	Overall(ctx context.Context) (TeamMoodSummary, error)
}

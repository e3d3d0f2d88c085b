package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/teampulse/internal/domain"
	"github.com/pscheid92/teampulse/internal/metrics"
)

// Service is the mood aggregation core. It holds no submission state of its
// own; the repository is the single source of truth and every operation
// derives its day window fresh from the clock.
type Service struct {
	subs  domain.SubmissionRepository
	guard domain.SubmissionGuard
	clock clockwork.Clock
}

// NewService creates the mood aggregation service.
func NewService(subs domain.SubmissionRepository, guard domain.SubmissionGuard, clock clockwork.Clock) *Service {
	return &Service{subs: subs, guard: guard, clock: clock}
}

// Submit records one user's mood for today. Returns
// domain.ErrDuplicateSubmission when the user already submitted within
// today's window; that is an expected business outcome, not a fault, and is
// never retried. Exactly one row is written on success, none on failure.
func (s *Service) Submit(ctx context.Context, mood domain.MoodLevel, userID, comment string) error {
	timer := s.clock.Now()
	defer func() {
		metrics.SubmissionDuration.Observe(s.clock.Since(timer).Seconds())
	}()

	if err := validate(mood, userID, comment); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	window := domain.Today(s.clock.Now())

	acquired, err := s.guard.Acquire(ctx, userID, window)
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to acquire submission guard: %w", err)
	}
	if !acquired {
		metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
		return domain.ErrDuplicateSubmission
	}

	// The guard alone is not durable (a flushed Redis forgets it), so the
	// store is still consulted before the write.
	exists, err := s.subs.ExistsByUserInWindow(ctx, userID, window)
	if err != nil {
		s.release(ctx, userID, window)
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to check existing submission: %w", err)
	}
	if exists {
		// Guard stays held: the slot is legitimately taken for the day.
		metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
		return domain.ErrDuplicateSubmission
	}

	sub := &domain.Submission{
		Mood:        mood,
		UserID:      userID,
		Comment:     comment,
		SubmittedAt: s.clock.Now(),
	}
	if _, err := s.subs.Insert(ctx, sub); err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			// Lost the race despite the guard; the unique constraint is the
			// final authority.
			metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
			return domain.ErrDuplicateSubmission
		}
		s.release(ctx, userID, window)
		metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	slog.Debug("Mood submitted", "user_id", userID, "mood", sub.Mood, "day", window.Key())
	return nil
}

// Overall assembles today's team mood: the mean of all submission scores
// mapped back to a category, plus every non-empty comment in store order.
// OverallMood is nil when nobody has submitted yet.
func (s *Service) Overall(ctx context.Context) (domain.TeamMoodSummary, error) {
	timer := s.clock.Now()
	defer func() {
		metrics.OverallQueryDuration.Observe(s.clock.Since(timer).Seconds())
	}()

	window := domain.Today(s.clock.Now())

	subs, err := s.subs.ListInWindow(ctx, window)
	if err != nil {
		metrics.OverallQueriesTotal.WithLabelValues("error").Inc()
		return domain.TeamMoodSummary{}, fmt.Errorf("failed to list submissions: %w", err)
	}

	summary := domain.TeamMoodSummary{Comments: make([]string, 0, len(subs))}
	if len(subs) == 0 {
		metrics.OverallQueriesTotal.WithLabelValues("empty").Inc()
		return summary, nil
	}

	total := 0
	for _, sub := range subs {
		total += domain.Score(sub.Mood)
		if sub.Comment != "" {
			summary.Comments = append(summary.Comments, sub.Comment)
		}
	}

	average := float64(total) / float64(len(subs))
	overall := domain.FromScore(average)
	summary.OverallMood = &overall

	metrics.OverallQueriesTotal.WithLabelValues("ok").Inc()
	return summary, nil
}

func validate(mood domain.MoodLevel, userID, comment string) error {
	if _, err := domain.ParseMoodLevel(string(mood)); err != nil {
		return err
	}
	if userID == "" {
		return domain.ErrMissingUserID
	}
	if utf8.RuneCountInString(comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: %d characters (max %d)", domain.ErrCommentTooLong, utf8.RuneCountInString(comment), domain.MaxCommentLength)
	}
	return nil
}

// release is best-effort: a stuck guard expires with the window's TTL anyway.
func (s *Service) release(ctx context.Context, userID string, window domain.DayWindow) {
	if err := s.guard.Release(ctx, userID, window); err != nil {
		metrics.GuardReleaseFailures.Inc()
		slog.Error("Failed to release submission guard", "user_id", userID, "day", window.Key(), "error", err)
	}
}

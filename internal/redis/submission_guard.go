package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/teampulse/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// guardSlack keeps expired keys around briefly past midnight so a submission
// written in the window's last moments is still covered while it lands.
const guardSlack = time.Minute

// SubmissionGuard implements domain.SubmissionGuard with a per-(user, day)
// SET NX key that expires shortly after the day window closes.
type SubmissionGuard struct {
	rdb   *goredis.Client
	clock clockwork.Clock
}

// NewSubmissionGuard creates a SubmissionGuard on the shared client.
func NewSubmissionGuard(rdb *goredis.Client, clock clockwork.Clock) *SubmissionGuard {
	return &SubmissionGuard{rdb: rdb, clock: clock}
}

// Acquire claims the user's submission slot for the window. Returns false
// when the slot is already held.
func (g *SubmissionGuard) Acquire(ctx context.Context, userID string, window domain.DayWindow) (bool, error) {
	ttl := window.Remaining(g.clock.Now()) + guardSlack
	if ttl <= 0 {
		ttl = guardSlack
	}

	args := goredis.SetArgs{TTL: ttl, Mode: "NX"}
	_, err := g.rdb.SetArgs(ctx, guardKey(userID, window), "1", args).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to set submission guard: %w", err)
	}
	return true, nil
}

// Release frees the slot, letting the user retry after a failed write.
func (g *SubmissionGuard) Release(ctx context.Context, userID string, window domain.DayWindow) error {
	if err := g.rdb.Del(ctx, guardKey(userID, window)).Err(); err != nil {
		return fmt.Errorf("failed to delete submission guard: %w", err)
	}
	return nil
}

func guardKey(userID string, window domain.DayWindow) string {
	return "mood:guard:" + window.Key() + ":" + userID
}

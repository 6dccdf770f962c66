package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cantina-pos/internal/common"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// LoginLimiter throttles login attempts per email+IP with a fixed window
// counter in Redis. Login is the only unauthenticated credential check, so it
// is the only endpoint worth brute-forcing.
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		client: client,
		limit:  loginAttemptLimit,
		window: loginAttemptWindow,
	}
}

// Allow records one attempt and returns common.ErrorTooManyAttempts when the
// window budget is exhausted. Redis failures surface as ordinary errors so
// the caller can choose to fail open.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) error {
	key := fmt.Sprintf("login_attempts:%s:%s", strings.ToLower(strings.TrimSpace(email)), ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter: %w", err)
		}
	}
	if n > l.limit {
		return common.ErrorTooManyAttempts
	}
	return nil
}

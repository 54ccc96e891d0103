package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LoginLimiter throttles repeated failed logins per account using a redis
// counter with a sliding expiry. Redis being unreachable must never lock
// admins out, so every path fails open.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (l *LoginLimiter) key(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// Allow reports whether another login attempt is permitted for username.
func (l *LoginLimiter) Allow(ctx context.Context, username string) bool {
	if l == nil || l.client == nil {
		return true
	}

	count, err := l.client.Get(ctx, l.key(username)).Int64()
	if err == redis.Nil {
		return true
	}
	if err != nil {
		log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		return true
	}

	return count < l.maxAttempts
}

// RecordFailure bumps the failed-attempt counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) {
	if l == nil || l.client == nil {
		return
	}

	key := l.key(username)
	if _, err := l.client.Incr(ctx, key).Result(); err != nil {
		log.Warn().Err(err).Msg("failed to record login attempt")
		return
	}
	if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to set login attempt expiry")
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) {
	if l == nil || l.client == nil {
		return
	}

	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to reset login attempts")
	}
}

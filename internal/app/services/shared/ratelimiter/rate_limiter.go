package ratelimiter

import (
	"context"
	"fmt"
	"mediflow-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// WriteLimiter is a fixed-window limiter for the record-creating endpoints.
// Algorithm: fixed window counter stored in Redis with TTL equal to the
// window duration.
type WriteLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewWriteLimiter(redis contracts.RedisRepository, log *zap.Logger) *WriteLimiter {
	return &WriteLimiter{redis: redis, log: log}
}

// ApplyWriteLimiterInput configures limiter evaluation.
type ApplyWriteLimiterInput struct {
	// ClientKey identifies the caller to be limited (remote IP).
	ClientKey string
	// LimiterGroupName namespaces the limiter key (e.g. WRITE).
	LimiterGroupName string
	// WindowDurationSec defines the fixed window length in seconds.
	WindowDurationSec int
	// MaxQuota is the max number of requests allowed within the window.
	MaxQuota int
	// NowUTC is optional; if zero, time.Now().UTC() is used (useful for tests).
	NowUTC time.Time
}

// ApplyWriteLimiterOutput reports allowance and retry-after seconds.
type ApplyWriteLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

// ApplyWriteLimiter enforces a fixed-window limit keyed by group + client.
// It returns Allowed=false with RetryAfterSecs until the next window boundary
// when quota is exceeded.
func (l *WriteLimiter) ApplyWriteLimiter(ctx context.Context, in *ApplyWriteLimiterInput) (*ApplyWriteLimiterOutput, error) {
	if in == nil {
		return &ApplyWriteLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}

	client := strings.TrimSpace(in.ClientKey)
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	maxQuota := in.MaxQuota
	if windowSec <= 0 {
		windowSec = 60
	}
	if maxQuota <= 0 {
		return &ApplyWriteLimiterOutput{Allowed: true}, nil
	}

	if client == "" || group == "" {
		return &ApplyWriteLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, client, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	newCount, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("WriteLimiter.ApplyWriteLimiter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &ApplyWriteLimiterOutput{Allowed: false}, err
	}

	nextWindowStart := (windowID + 1) * int64(windowSec)
	retryAfter := int(nextWindowStart-now.Unix()) + 1

	if newCount > int64(maxQuota) {
		return &ApplyWriteLimiterOutput{Allowed: false, RetryAfterSecs: retryAfter}, nil
	}

	return &ApplyWriteLimiterOutput{Allowed: true}, nil
}

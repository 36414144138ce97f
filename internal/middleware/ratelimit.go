package middleware

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	tele "gopkg.in/telebot.v3"
)

// UserLimiter keeps one token bucket per Telegram user.
type UserLimiter struct {
	limiters map[int64]*rate.Limiter
	mu       sync.RWMutex
	r        rate.Limit
	burst    int
}

// NewUserLimiter creates a limiter granting r events per second with the
// given burst per user.
func NewUserLimiter(r float64, burst int) *UserLimiter {
	if burst <= 0 {
		burst = 1
	}

	return &UserLimiter{
		limiters: make(map[int64]*rate.Limiter),
		r:        rate.Limit(r),
		burst:    burst,
	}
}

// Allow reports whether the user may proceed right now.
func (l *UserLimiter) Allow(userID int64) bool {
	return l.getLimiter(userID).Allow()
}

func (l *UserLimiter) getLimiter(userID int64) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[userID]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[userID]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.r, l.burst)
	l.limiters[userID] = limiter

	return limiter
}

// RateLimit drops updates from users sending faster than their bucket
// refills. Card generation takes tens of seconds per word, so the
// budget is deliberately tight.
func RateLimit(limiter *UserLimiter, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !limiter.Allow(sender.ID) {
				logger.Warn("Rate limit exceeded", zap.Int64("user_id", sender.ID))
				return c.Send("⏳ Too many requests. Please wait a moment and try again.")
			}

			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"painel/config"
	domainerrors "painel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 3 * time.Minute
	limiterIdleTTL         = 5 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter bounds requests per client address.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

// RateLimiterParams defines the required parameters
type RateLimiterParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewLoginRateLimiter limits login attempts as configured and evicts idle clients while the app runs.
func NewLoginRateLimiter(params RateLimiterParams) *RateLimiter {
	perMinute, burst := 10, 5
	if rc := params.Config.RateLimit; rc != nil {
		if rc.LoginPerMinute > 0 {
			perMinute = rc.LoginPerMinute
		}
		if rc.Burst > 0 {
			burst = rc.Burst
		}
	}

	rl := NewRateLimiter(rate.Limit(float64(perMinute)/60), burst)

	cleanupCtx, cancel := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go rl.cleanupLoop(cleanupCtx, limiterCleanupInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return rl
}

// NewRateLimiter creates a per-address limiter.
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     r,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters[key]; ok {
		l.lastSeen = time.Now()

		return l.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &clientLimiter{limiter: limiter, lastSeen: time.Now()}

	return limiter
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(limiterIdleTTL)
		}
	}
}

func (rl *RateLimiter) evictIdle(ttl time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, l := range rl.limiters {
		if time.Since(l.lastSeen) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// Middleware rejects a client over its budget with 429 and a Retry-After hint.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.getLimiter(c.RealIP()).Allow() {
				retryAfter := 1
				if rl.rate > 0 {
					retryAfter = max(int(1/float64(rl.rate)), 1)
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

				return errors.WithStack(domainerrors.ErrTooManyRequests)
			}

			return next(c)
		}
	}
}


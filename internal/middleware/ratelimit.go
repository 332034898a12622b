package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/marketing-ops/api/internal/config"
)

// RateLimiter applies a token bucket per operator (or client IP when
// unauthenticated). Routes not listed in routes pass through.
func RateLimiter(cfg config.RateLimitConfig, message string, routes ...string) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	limited := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		limited[route] = struct{}{}
	}

	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)
	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(rate.Every(perRequest), cfg.Requests)
			limiters[key] = l
		}
		return l
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := limited[c.Path()]; !ok {
				return next(c)
			}

			key := OperatorIDFromContext(c)
			if key == "" {
				key = c.RealIP()
			}
			if !limiterFor(key).Allow() {
				return deny(c, http.StatusTooManyRequests, message)
			}

			return next(c)
		}
	}
}

package gazelle

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ThrottleConfig configures the Throttle handler.
type ThrottleConfig struct {
	Rate            float64                      // requests per second
	Burst           int                          // max burst
	KeyFunc         func(r *http.Request) string // default: remote IP
	OnLimit         Handler                      // default: 429 response
	CleanupInterval time.Duration                // how often to prune idle limiters (default: 1m)
	MaxIdle         time.Duration                // remove limiters idle longer than this (default: 5m)
}

// Throttle gates the chain with a per-key token bucket. Under the limit it
// delegates to its continuation; over the limit it sets Retry-After and
// finalizes the response with the OnLimit handler. The limiter table is
// construction-time state shared across requests and guarded by a mutex.
func Throttle(cfg ThrottleConfig) Handler {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(r *http.Request) string {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				return r.RemoteAddr
			}
			return host
		}
	}
	if cfg.OnLimit == nil {
		cfg.OnLimit = Then(
			SetStatus(http.StatusTooManyRequests),
			Text(http.StatusText(http.StatusTooManyRequests)),
		)
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	maxIdle := cfg.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 5 * time.Minute
	}

	var (
		mu          sync.Mutex
		limiters    = make(map[string]*limiterEntry)
		lastCleanup time.Time
	)

	return func(c *Context, next Next) (Outcome, error) {
		key := cfg.KeyFunc(c.Request)

		mu.Lock()
		now := time.Now()

		// Lazy cleanup of expired limiters.
		if now.Sub(lastCleanup) >= cleanupInterval {
			for k, e := range limiters {
				if now.Sub(e.lastSeen) > maxIdle {
					delete(limiters, k)
				}
			}
			lastCleanup = now
		}

		entry, ok := limiters[key]
		if !ok {
			entry = &limiterEntry{
				limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
			}
			limiters[key] = entry
		}
		entry.lastSeen = now
		mu.Unlock()

		if !entry.limiter.Allow() {
			retryAfter := strconv.FormatFloat(1/cfg.Rate, 'f', 0, 64)
			c.Response.SetHeader("Retry-After", retryAfter)
			return cfg.OnLimit(c, Finish)
		}

		return next(c)
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

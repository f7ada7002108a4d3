package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"retrohub/internal/api/handlers"
	"retrohub/internal/logging"

	"github.com/patrickmn/go-cache"
)

// RateLimiter is a fixed-window counter per client key. Counters live in a
// go-cache keyed by client and window number and expire on their own.
type RateLimiter struct {
	limit    int
	window   time.Duration
	counters *cache.Cache
	now      func() time.Time
}

// NewRateLimiter allows limit requests per window for each client.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		window:   window,
		counters: cache.New(window, 2*window),
		now:      time.Now,
	}
}

// Allow counts one request for key. When the limit is exhausted it returns
// false and the time left until the window resets.
func (l *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := l.now()
	slot := now.UnixNano() / int64(l.window)
	counterKey := fmt.Sprintf("%s|%d", key, slot)

	// Add fails when the counter already exists, which is fine.
	_ = l.counters.Add(counterKey, 0, l.window)
	n, err := l.counters.IncrementInt(counterKey, 1)
	if err != nil {
		// Expired between Add and Increment; start over in this window.
		l.counters.Set(counterKey, 1, l.window)
		n = 1
	}
	if n > l.limit {
		reset := time.Unix(0, (slot+1)*int64(l.window))
		return false, reset.Sub(now)
	}
	return true, 0
}

// Middleware rejects requests over the limit with a 429 problem response.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := ClientKey(r)
		ok, retryAfter := l.Allow(key)
		if !ok {
			logging.Log.Warnf("Rate limit exceeded for %s on %s %s", key, r.Method, r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			handlers.RespondWithProblem(w, r, http.StatusTooManyRequests, handlers.TitleRateLimited,
				fmt.Sprintf("Rate limit exceeded: %d per %s", l.limit, l.window))
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/zenkart/backend/httpjson"
	"golang.org/x/time/rate"
)

const ErrCodeRateLimited = "rate_limited"

// staleAfter is how long an idle client keeps its limiter before the
// sweep drops it.
const staleAfter = 10 * time.Minute

// RateLimiter applies a per-client-IP token bucket. It fronts the
// credential endpoints, which are the bruteforce surface.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows perMinute requests per client IP, with a burst of
// the same size.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
		limiters: make(map[string]*clientLimiter),
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastAccess = time.Now()

	if len(rl.limiters) > 10_000 {
		rl.sweepLocked()
	}

	return cl.limiter.Allow()
}

func (rl *RateLimiter) sweepLocked() {
	for k, v := range rl.limiters {
		if time.Since(v.lastAccess) > staleAfter {
			delete(rl.limiters, k)
		}
	}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !rl.allow(host) {
			httpjson.WriteErrorJson(w, "too many requests",
				http.StatusTooManyRequests, ErrCodeRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

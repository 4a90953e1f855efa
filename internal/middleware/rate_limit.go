package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"space-catalog/shipyard/internal/common"
	"space-catalog/shipyard/internal/logging"
)

// minIdleTTL is the shortest time a client's bucket is kept after its last request.
const minIdleTTL = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped by a sweep that runs at most once per idleTTL.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time

	whitelistedIPs map[string]bool
}

// NewRateLimiter allows rps requests per second per IP with the given burst.
// Loopback callers are never limited.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	// A bucket is only dropped once it would have refilled anyway.
	idleTTL := minIdleTTL
	if rps > 0 {
		if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idleTTL {
			idleTTL = refill
		}
	}
	return &RateLimiter{
		rps:       rate.Limit(rps),
		burst:     burst,
		limiters:  make(map[string]*clientLimiter),
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
		whitelistedIPs: map[string]bool{
			"127.0.0.1": true,
			"::1":       true,
		},
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.idleTTL {
		rl.sweep(now)
	}

	if cl, exists := rl.limiters[ip]; exists {
		cl.lastSeen = now
		return cl.limiter
	}
	cl := &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst), lastSeen: now}
	rl.limiters[ip] = cl
	return cl.limiter
}

// sweep drops idle buckets. Callers hold rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	before := len(rl.limiters)
	for ip, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) >= rl.idleTTL {
			delete(rl.limiters, ip)
		}
	}
	rl.lastSweep = now
	if evicted := before - len(rl.limiters); evicted > 0 {
		logging.Debug("Rate limiter evicted idle clients", "evicted", evicted, "remaining", len(rl.limiters))
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if rl.whitelistedIPs[ip] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(ip).Allow() {
			logging.Debug("Rate limit exceeded", "ip", ip, "request_id", GetRequestID(r.Context()))
			w.Header().Set("Retry-After", "1")
			common.RespondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

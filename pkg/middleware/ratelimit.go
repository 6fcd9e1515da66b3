package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"product-catalog/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientLimiter pairs a token bucket with its last access time so idle
// entries can be evicted.
type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter enforces a per-client request budget keyed by remote IP.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	log    *zap.Logger
	mu     sync.Mutex
	caller map[string]*clientLimiter
	stopCh chan struct{}
}

// NewRateLimiter builds a limiter allowing `requests` per `window` with a
// burst of the full budget, and starts the background eviction loop.
func NewRateLimiter(requests int, window time.Duration, log *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		limit:  rate.Limit(float64(requests) / window.Seconds()),
		burst:  requests,
		log:    log,
		caller: make(map[string]*clientLimiter),
		stopCh: make(chan struct{}),
	}

	go rl.cleanupLoop(window)

	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if !rl.allow(ip) {
				rl.log.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseJSON(w, http.StatusTooManyRequests, false,
					"Too many requests, please try again later", nil, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.caller[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.caller[ip] = cl
	}
	cl.lastAccess = time.Now()

	return cl.limiter.Allow()
}

// cleanupLoop evicts entries idle for more than two windows.
func (rl *RateLimiter) cleanupLoop(window time.Duration) {
	ticker := time.NewTicker(window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * window)
			rl.mu.Lock()
			for ip, cl := range rl.caller {
				if cl.lastAccess.Before(cutoff) {
					delete(rl.caller, ip)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

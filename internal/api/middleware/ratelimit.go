package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"showcase/internal/forms"
	"showcase/internal/lib/logger/utils"
	"showcase/internal/lib/response"
)

// RateLimiter allows each client IP a burst of form submissions refilled at
// a steady rate.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	every    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perMinute submissions per client, with bursts of the
// same size. Clients idle for ten minutes are forgotten.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		idle:     10 * time.Minute,
		now:      time.Now,
	}
}

func (l *RateLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, c := range l.limiters {
		if now.Sub(c.lastSeen) > l.idle {
			delete(l.limiters, k)
		}
	}

	c, ok := l.limiters[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Middleware rejects clients over their budget with 429 and a danger toast.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !l.allow(key) {
			utils.Logger.Warn("RateLimiter - request rejected", zap.String("client", key), zap.String("path", r.URL.Path))
			response.Toast(w, http.StatusTooManyRequests, forms.DangerToast(forms.MsgTooManyRequests))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

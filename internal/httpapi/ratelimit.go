package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	feedbackRateWindow = 15 * time.Minute
	feedbackRateMax    = 5
)

// ipLimiter enforces a per-IP token bucket sized to max requests per window.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval rate.Limit
	burst    int
}

func newIPLimiter(window time.Duration, max int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*rate.Limiter),
		interval: rate.Every(window / time.Duration(max)),
		burst:    max,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.interval, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter.Allow()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

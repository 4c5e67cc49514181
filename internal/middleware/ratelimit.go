package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a host's limiter is kept after its last request.
const idleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client host. Hosts idle for
// longer than idleTTL are dropped, at most once per idleTTL.
type IPRateLimiter struct {
	ips       map[string]*client
	mu        sync.Mutex
	r         rate.Limit
	b         int
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*client),
		r:   r,
		b:   b,
		now: time.Now,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	if now.Sub(i.lastSweep) > idleTTL {
		for k, c := range i.ips {
			if now.Sub(c.lastSeen) > idleTTL {
				delete(i.ips, k)
			}
		}
		i.lastSweep = now
	}

	c, exists := i.ips[ip]
	if !exists {
		c = &client{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// LimitMiddleware rejects requests over the per-IP budget with 429.
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !i.getLimiter(ip).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CORS allows cross-origin calls from origin on every route of next.
func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

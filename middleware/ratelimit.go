package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/the-Alberich/code-test-ba/models"
)

// defaultMaxClients caps how many per-client buckets are held at once
const defaultMaxClients = 10000

// ClientLimiter hands every client address its own token bucket.
// Buckets unused for idleTTL are dropped by a sweep that runs at most once
// per idleTTL. While the table is full, unknown clients draw from one shared
// overflow bucket, so a flood of new addresses cannot grow memory.
type ClientLimiter struct {
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	maxClients int

	mu        sync.Mutex
	buckets   map[string]*clientBucket
	overflow  *rate.Limiter
	nextSweep time.Time
	now       func() time.Time
}

type clientBucket struct {
	tokens   *rate.Limiter
	lastUsed time.Time
}

// NewClientLimiter creates a per-client limiter; returns nil if rps or burst is not positive
func NewClientLimiter(rps float64, burst int, idleTTL time.Duration) *ClientLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}

	limit := rate.Limit(rps)
	return &ClientLimiter{
		limit:      limit,
		burst:      burst,
		idleTTL:    idleTTL,
		maxClients: defaultMaxClients,
		buckets:    make(map[string]*clientBucket),
		overflow:   rate.NewLimiter(limit, burst),
		now:        time.Now,
	}
}

// Allow reports whether the client at addr may make a request now
func (l *ClientLimiter) Allow(addr string) bool {
	if l == nil {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if !now.Before(l.nextSweep) {
		l.sweep(now)
	}

	bucket, ok := l.buckets[addr]
	if !ok {
		if len(l.buckets) >= l.maxClients {
			return l.overflow.AllowN(now, 1)
		}
		bucket = &clientBucket{tokens: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[addr] = bucket
	}

	bucket.lastUsed = now
	return bucket.tokens.AllowN(now, 1)
}

// Clients returns the number of buckets currently held
func (l *ClientLimiter) Clients() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweep must be called with mu held
func (l *ClientLimiter) sweep(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for addr, bucket := range l.buckets {
		if bucket.lastUsed.Before(cutoff) {
			delete(l.buckets, addr)
		}
	}
	l.nextSweep = now.Add(l.idleTTL)
}

// RateLimit rejects requests with 429 once a client exceeds its budget.
// Clients are identified by ips; a nil limiter lets every request through.
func RateLimit(limiter *ClientLimiter, ips *IPResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(ips.ClientIP(r)) {
				w.Header().Set("Retry-After", "1")
				writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Error: models.MsgTooManyRequests})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"crush-hub/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientIdleTTL is how long a client bucket survives without requests.
const ClientIdleTTL = 10 * time.Minute

type clientBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP. Buckets idle for
// longer than ClientIdleTTL are dropped, so the map only holds recent clients.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientBucket
	lastSweep time.Time
}

// NewRateLimiter returns nil when perSecond is not positive, meaning no limit.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*clientBucket),
	}
}

func (r *RateLimiter) limiter(key string) (*rate.Limiter, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= ClientIdleTTL {
		r.sweep(now)
	}
	b, ok := r.clients[key]
	if !ok {
		b = &clientBucket{lim: rate.NewLimiter(r.limit, r.burst)}
		r.clients[key] = b
	}
	b.lastSeen = now
	return b.lim, now
}

// sweep drops idle buckets. A dropped client starts again with a full
// bucket, which is what an idle bucket would have refilled to anyway.
func (r *RateLimiter) sweep(now time.Time) {
	for key, b := range r.clients {
		if now.Sub(b.lastSeen) >= ClientIdleTTL {
			delete(r.clients, key)
		}
	}
	r.lastSweep = now
}

// Len returns the number of tracked clients.
func (r *RateLimiter) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Allow reports whether the client may proceed now.
func (r *RateLimiter) Allow(client string) bool {
	if r == nil {
		return true
	}
	lim, now := r.limiter(client)
	return lim.AllowN(now, 1)
}

// Middleware answers 429 once a client exhausts its bucket. The client is
// keyed by gin's ClientIP, which only honours forwarding headers sent by
// the router's trusted proxies.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "Too Many Requests",
				Message: "Download rate limit exceeded, retry later.",
			})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiterTTL controls how long an idle client's limiter is kept before the
// sweep drops it.
const ipLimiterTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit returns a gin middleware that applies a token-bucket limit per
// client IP. Requests over the limit receive 429. Limiters for idle clients
// are swept lazily on lookup.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		limiters  = make(map[string]*ipLimiter)
		lastSweep = time.Now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		if now.Sub(lastSweep) > ipLimiterTTL {
			for k, l := range limiters {
				if now.Sub(l.lastSeen) > ipLimiterTTL {
					delete(limiters, k)
				}
			}
			lastSweep = now
		}

		l, ok := limiters[ip]
		if !ok {
			l = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			limiters[ip] = l
		}
		l.lastSeen = now
		allowed := l.limiter.Allow()
		mu.Unlock()

		if !allowed {
			c.Abort()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "too many requests",
				"data":    nil,
			})
			return
		}

		c.Next()
	}
}

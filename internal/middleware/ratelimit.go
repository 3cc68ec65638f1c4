package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "ess-chatbot/pkg/log"
	pkgResponse "ess-chatbot/pkg/response"
)

// RateLimiter throttles chat requests per caller with auto-cleanup of
// idle sources. Keyed by session id when present, client IP otherwise,
// so anonymous callers cannot starve logged-in ones.
type RateLimiter struct {
	l        pkgLog.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing requestsPerMin per caller.
func NewRateLimiter(l pkgLog.Logger, requestsPerMin int) *RateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		l: l,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique callers
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

// Handler is the gin middleware enforcing the limit.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := callerKey(c)
		if err := rl.allow(key); err != nil {
			rl.l.Warnf(c.Request.Context(), "rate limit: %v", err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, pkgResponse.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests. Please slow down.",
			})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

// callerKey picks the throttling key for one request. The X-Session-ID
// header is the same one the chat endpoint accepts as the session
// handle, so logged-in callers sending it get their own bucket.
func callerKey(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return "session:" + sid
	}
	return "ip:" + clientIP(c.Request)
}

// clientIP extracts the client IP, honoring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

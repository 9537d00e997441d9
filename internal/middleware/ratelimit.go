package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"smart-todo/pkg/response"
)

// ChatRateLimit throttles chat requests per authenticated user. Each chat
// message costs one upstream LLM call, so this sits in front of the chat
// routes only.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !m.chatRL.Allow(strconv.FormatInt(sc.UserID, 10)) {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// userRateLimiter keeps one token bucket per user with auto-expiry.
type userRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newUserRateLimiter(requestsPerMin int) *userRateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 30
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &userRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked users
			nil,           // no eviction callback
			time.Minute*5, // TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *userRateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// README: Redis fixed-window per-IP rate limiter.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit allows perMin requests per client IP per minute. A nil client or
// non-positive limit disables the limiter. Redis failures fail open: an
// unreachable limiter should not take recommendations down with it.
func RateLimit(client *redis.Client, perMin int) gin.HandlerFunc {
	if client == nil || perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), time.Now().UTC().Format("1504"))

		n, err := client.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if n == 1 {
			client.Expire(ctx, key, time.Minute)
		}
		if n > int64(perMin) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

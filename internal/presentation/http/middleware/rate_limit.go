package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/AtRiskMedia/landstack-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimit allows perMinute requests per client IP with a burst of the same
// size. Idle limiters are evicted after ten minutes.
func RateLimit(perMinute int, logger *logging.ChanneledLogger) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiters := cache.New(10*time.Minute, 5*time.Minute)
	interval := time.Minute / time.Duration(perMinute)
	every := rate.Every(interval)
	retryAfter := strconv.Itoa(int(math.Ceil(interval.Seconds())))

	return func(c *gin.Context) {
		key := c.ClientIP()
		var limiter *rate.Limiter
		if v, ok := limiters.Get(key); ok {
			limiter = v.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(every, perMinute)
		}
		limiters.SetDefault(key, limiter)

		if !limiter.Allow() {
			logger.Inquiry().Warn("Rate limit exceeded", "client", key, "path", c.Request.URL.Path)
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

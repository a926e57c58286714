package middleware

import (
	"github.com/haierkeys/fast-note-keep/pkg/app"
	"github.com/haierkeys/fast-note-keep/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// RateLimiter creates rate limiting middleware backed by one shared token bucket
// RateLimiter 创建基于共享令牌桶的限流中间件
func RateLimiter(bucket *ratelimit.Bucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bucket != nil && bucket.TakeAvailable(1) == 0 {
			response := app.NewResponse(c)
			response.ToResponse(code.ErrorTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

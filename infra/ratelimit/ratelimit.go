package ratelimit

import (
	"shopfloor/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter rejects requests beyond limit per second with common.ErrTooManyRequests.
// A zero limit lets every request through.
func Limiter(limit rate.Limit, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			panic(common.ErrTooManyRequests)
		}
		c.Next()
	}
}

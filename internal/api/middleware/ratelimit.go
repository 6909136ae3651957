package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/smzdh/smzdh/pkg/response"
)

// RateLimit 进程级令牌桶限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.Fail(c, http.StatusTooManyRequests, response.CodeBadRequest, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}

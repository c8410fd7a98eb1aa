package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/ratelimit"
)

// RateLimit counts requests per client IP. A limiter error lets the request
// through.
func RateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Println("rate limit error:", err)
		}
		if !ok {
			httperr.TooManyRequests(c, "too_many_requests", "Muitas tentativas. Tente novamente mais tarde.")
			c.Abort()
			return
		}
		c.Next()
	}
}

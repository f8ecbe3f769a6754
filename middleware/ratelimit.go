package middleware

import (
	"net/http"
	"strings"

	"waitlist/ratelimit"

	"github.com/gin-gonic/gin"
)

// ClientIdentifier picks the client key for rate limiting: the first hop of
// x-forwarded-for, then x-real-ip, then "unknown".
func ClientIdentifier(r *http.Request) string {
	if forwarded := r.Header.Get("x-forwarded-for"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("x-real-ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}

func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(ClientIdentifier(c.Request)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or assigns a fresh one, and
// echoes it on the response so log lines can be tied to a client call.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation ID.
func GetRequestID(c *gin.Context) string {
	val, _ := c.Get("requestID")
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}

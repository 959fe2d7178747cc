package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the Gin context key carrying the request correlation id.
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID attaches a correlation id to every request, honoring an inbound
// X-Request-ID header so upstream proxies can trace through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

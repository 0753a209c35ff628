package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Liyana-shirin/hospital-management-system-frontent/metrics"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the inbound one when a
// proxy already assigned it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// Observe counts served pages by route and status.
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.CountPage(c.Request.Method, route, c.Writer.Status())
	}
}

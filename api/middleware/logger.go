package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// RequestLogger tags each request with an id and logs it once it is served.
func RequestLogger(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestId", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		format := "%s %s %s -> %d in %s"
		args := []any{requestID, c.Request.Method, c.Request.URL.Path, status, time.Since(start)}

		if status >= 500 {
			logger.Errorf(format, args...)
			return
		}
		logger.Infof(format, args...)
	}
}

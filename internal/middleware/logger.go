package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key the request id is stored under.
const ContextKeyRequestID = "request_id"

// HeaderRequestID is the header a caller may supply a request id in; the
// assigned id is always echoed back on it.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns each request an id, honoring a caller-supplied one, so
// extraction failures can be correlated with server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" when the
// middleware did not run.
func GetRequestID(c *gin.Context) string {
	val, _ := c.Get(ContextKeyRequestID)
	id, _ := val.(string)
	return id
}

// Logger writes one access log line per request after the handler chain
// completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("middleware.Logger: %s %s status=%d duration=%s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			GetRequestID(c),
		)
	}
}

// Recovery converts handler panics into 500 responses.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}

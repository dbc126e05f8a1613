package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit function is a middleware that caps the request body at
// maxBodyBytes. Reads past the cap fail with http.MaxBytesError, so handlers
// reading the body reject oversized payloads instead of buffering them.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}

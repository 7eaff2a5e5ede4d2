package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps request bodies at the configured size. Reads past the
// limit fail with *http.MaxBytesError.
func (m Middleware) BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.maxBody > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBody)
		}
		c.Next()
	}
}

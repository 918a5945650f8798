// internal/middleware/request_token.go
package middleware

import (
	"github.com/gin-gonic/gin"
)

const RequestTokenHeader = "X-Request-Token"

// RequestToken echoes the client-issued token back on the response. In-flight
// fetches are never cancelled server-side; the storefront compares the echoed
// token against its latest issued one and discards stale responses.
func RequestToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetHeader(RequestTokenHeader); token != "" {
			c.Header(RequestTokenHeader, token)
		}
		c.Next()
	}
}

package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-tasker/pkg/response"
)

const HeaderAdminKey = "X-Admin-Key"

// AdminKey guards credential management. With no admin key configured
// every request is refused.
func (m Middleware) AdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminKey == "" {
			response.Forbidden(c)
			c.Abort()
			return
		}

		key := c.GetHeader(HeaderAdminKey)
		if key == "" {
			key = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

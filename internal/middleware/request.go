package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-tasker/internal/model"
	"ai-tasker/pkg/log"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"

	scopeKey         = "scope"
	anonymousUserID  = "anonymous"
	maxRequestIDSize = 128
)

// RequestID tags the request context with an id taken from X-Request-ID,
// or a new uuid, and echoes it back in the response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > maxRequestIDSize {
			id = uuid.NewString()
		}

		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Scope resolves the calling user from X-User-ID. Plans are partitioned by it.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			userID = anonymousUserID
		}
		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: anonymousUserID}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"flight-concierge/internal/model"
	"flight-concierge/pkg/response"
)

// scopeKey is the gin context key the Auth middleware stores the caller's
// scope under.
const scopeKey = "flight-concierge.scope"

// Auth validates the Bearer token and attaches the caller's scope to the
// request context. Requests without a valid token are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: claims.UserID})
		c.Next()
	}
}

// GetScope returns the scope the Auth middleware stored on the request.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

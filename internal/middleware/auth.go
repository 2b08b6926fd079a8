package middleware

import (
	"strings"

	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth resolves the session token from the Authorization header, the session
// cookie or, for EventSource clients that cannot set headers, the "token"
// query parameter.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))

		if tokenString == "" {
			tokenString, _ = c.Cookie(m.cookieConfig.Name)
		}
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}

package middleware

import (
	"spyglass-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// Locale stores the request language. An explicit "lang" header wins over
// Accept-Language negotiation.
func (m Middleware) Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("lang")
		if lang == "" {
			lang = locale.Negotiate(c.GetHeader("Accept-Language"))
		}

		c.Request = c.Request.WithContext(locale.SetLocaleToContext(c.Request.Context(), lang))
		c.Next()
	}
}

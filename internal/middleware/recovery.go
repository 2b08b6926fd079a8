package middleware

import (
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 and reports it to Discord. A panic on an
// event stream that already sent its headers only ends the stream.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				owner := scope.GetScopeFromContext(ctx).UserID
				logger.Errorf(ctx, "middleware.Recovery: panic recovered: %v | owner=%q | %s %s",
					err, owner, c.Request.Method, c.Request.URL.Path)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}

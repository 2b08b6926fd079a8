package http

import (
	"spyglass-srv/config"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/internal/session"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      session.UseCase
	cookie  config.CookieConfig
	discord discord.IDiscord
}

func New(l log.Logger, uc session.UseCase, cookie config.CookieConfig, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		cookie:  cookie,
		discord: discord,
	}
}

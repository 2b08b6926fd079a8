package http

import (
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      history.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc history.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

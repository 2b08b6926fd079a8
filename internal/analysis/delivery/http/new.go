package http

import (
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

const streamKeepAlive = 15 * time.Second

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l         log.Logger
	uc        analysis.UseCase
	discord   discord.IDiscord
	keepAlive time.Duration
}

func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		discord:   discord,
		keepAlive: streamKeepAlive,
	}
}

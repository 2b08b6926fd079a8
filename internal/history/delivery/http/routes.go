package http

import (
	"spyglass-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/history", h.List)
		api.GET("/history/:history_id", h.Get)
	}
}

package http

import (
	"spyglass-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/analyses", h.Analyze)

		api.GET("/workspace", h.Workspace)
		api.GET("/workspace/stream", h.Stream)
		api.POST("/workspace/mute", h.SetMute)
		api.POST("/workspace/new-investigation", h.NewInvestigation)

		api.POST("/history/:history_id/present", h.Present)
		api.DELETE("/history", h.ClearHistory)
	}
}

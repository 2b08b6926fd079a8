package http

import (
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListRequest(c *gin.Context) (listReq, model.Scope, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetRequest(c *gin.Context) (getReq, model.Scope) {
	req := getReq{
		ID: c.Param("history_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

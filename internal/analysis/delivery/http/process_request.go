package http

import (
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processPresentRequest(c *gin.Context) (presentReq, model.Scope) {
	req := presentReq{
		HistoryID: c.Param("history_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc
}

func (h *handler) processMuteRequest(c *gin.Context) (muteReq, model.Scope, error) {
	var req muteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processClearHistoryRequest(c *gin.Context) (clearHistoryReq, model.Scope, error) {
	var req clearHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

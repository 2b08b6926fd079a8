package http

import (
	"spyglass-srv/internal/media"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processEditImageRequest(c *gin.Context) (media.EditImageInput, model.Scope, error) {
	var req editImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return media.EditImageInput{}, model.Scope{}, errWrongBody
	}
	input, err := req.toInput()
	if err != nil {
		return media.EditImageInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processTranscribeRequest(c *gin.Context) (media.TranscribeInput, model.Scope, error) {
	var req transcribeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return media.TranscribeInput{}, model.Scope{}, errWrongBody
	}
	input, err := req.toInput()
	if err != nil {
		return media.TranscribeInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processSpeechRequest(c *gin.Context) (speechReq, model.Scope, error) {
	var req speechReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processSummaryRequest(c *gin.Context) (summaryReq, model.Scope, error) {
	var req summaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errWrongBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processCreateVideoRequest(c *gin.Context) (media.CreateVideoJobInput, model.Scope, error) {
	var req createVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return media.CreateVideoJobInput{}, model.Scope{}, errWrongBody
	}
	input, err := req.toInput()
	if err != nil {
		return media.CreateVideoJobInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

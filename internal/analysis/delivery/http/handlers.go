package http

import (
	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze competitors
// @Description Generate a competitive intelligence report, store it in history and start presenting it
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Competitors (up to 3) and mode (standard or deep)"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}

// @Summary Get workspace
// @Description Return the displayed report, revealed sections, traffic records and mute state
// @Tags Workspace
// @Produce json
// @Success 200 {object} workspaceResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/workspace [get]
func (h *handler) Workspace(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Workspace(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Workspace: usecase Workspace failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkspaceResp(o))
}

// @Summary Set narration mute
// @Description Muting requires confirmed=true and silences narration immediately
// @Tags Workspace
// @Accept json
// @Produce json
// @Param body body muteReq true "Mute request"
// @Success 200 {object} workspaceResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/workspace/mute [post]
func (h *handler) SetMute(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMuteRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.SetMute: processMuteRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SetMute(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.SetMute: usecase SetMute failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkspaceResp(o))
}

// @Summary Start a new investigation
// @Description Clear the displayed report and briefly highlight it in the history
// @Tags Workspace
// @Produce json
// @Success 200 {object} workspaceResp
// @Router /api/v1/workspace/new-investigation [post]
func (h *handler) NewInvestigation(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.NewInvestigation(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.NewInvestigation: usecase NewInvestigation failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkspaceResp(o))
}

// @Summary Present a past analysis
// @Description Load a report from history into the workspace and present it again
// @Tags History
// @Produce json
// @Param history_id path string true "History item ID"
// @Success 200 {object} workspaceResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/history/{history_id}/present [post]
func (h *handler) Present(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processPresentRequest(c)

	o, err := h.uc.Present(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Present: usecase Present failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newWorkspaceResp(o))
}

// @Summary Clear analysis history
// @Description Remove every past analysis. Requires confirm=true.
// @Tags History
// @Produce json
// @Param confirm query bool true "Confirmation"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/history [delete]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processClearHistoryRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.ClearHistory: processClearHistoryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ClearHistory(ctx, sc, req.toInput()); err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.ClearHistory: usecase ClearHistory failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

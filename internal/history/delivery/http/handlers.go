package http

import (
	"spyglass-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List analysis history
// @Description Return the caller's past analyses, most recent first
// @Tags History
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/history [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "history.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get one history item
// @Description Return a past analysis with its full report
// @Tags History
// @Produce json
// @Param history_id path string true "History item ID"
// @Success 200 {object} historyItemResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/history/{history_id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc := h.processGetRequest(c)

	o, err := h.uc.Get(ctx, sc.UserID, req.ID)
	if err != nil {
		h.l.Warnf(ctx, "history.delivery.http.Get: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newHistoryItemResp(o))
}

package http

import (
	"io"
	"time"

	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	sseEventSnapshot = "snapshot"
	sseEventPing     = "ping"
)

// @Summary Stream presentation events
// @Description Server-sent events: snapshot first, then started, section, complete, reset, mute, narration and highlight
// @Tags Workspace
// @Produce text/event-stream
// @Success 200 {object} eventResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/workspace/stream [get]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	events, cancel, err := h.uc.Subscribe(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Stream: usecase Subscribe failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	defer cancel()

	ws, err := h.uc.Workspace(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Stream: usecase Workspace failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent(sseEventSnapshot, h.newWorkspaceResp(ws))
	c.Writer.Flush()

	keepAlive := time.NewTicker(h.keepAlive)
	defer keepAlive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case evt, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(evt.Type), h.newEventResp(evt))
			return true
		case <-keepAlive.C:
			c.SSEvent(sseEventPing, time.Now().UTC().Format(time.RFC3339))
			return true
		}
	})
}

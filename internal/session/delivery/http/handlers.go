package http

import (
	"errors"
	"io"

	"spyglass-srv/pkg/response"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Start session
// @Description Issue an anonymous session token. The token is also set as an HttpOnly cookie.
// @Tags Session
// @Accept json
// @Produce json
// @Param body body createReq false "Optional display name"
// @Success 200 {object} sessionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/sessions [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "session.delivery.http.Create: ShouldBindJSON failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	c.SetSameSite(sameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, o.Token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
	response.OK(c, h.newSessionResp(o))
}

// @Summary Current session
// @Tags Session
// @Produce json
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/sessions/me [get]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.uc.Me(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMeResp(sc))
}

// @Summary End session
// @Description Clear the session cookie
// @Tags Session
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/sessions [delete]
func (h *handler) Delete(c *gin.Context) {
	c.SetSameSite(sameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
	response.OK(c, nil)
}

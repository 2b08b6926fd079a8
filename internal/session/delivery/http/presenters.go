package http

import (
	"net/http"
	"strings"
	"time"

	"spyglass-srv/internal/model"
	"spyglass-srv/internal/session"
)

type createReq struct {
	Username string `json:"username"`
}

func (r createReq) toInput() session.CreateInput {
	return session.CreateInput{Username: r.Username}
}

type sessionResp struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Username  string `json:"username,omitempty"`
	ExpiresAt string `json:"expires_at"`
}

type meResp struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
}

func (h *handler) newSessionResp(o session.CreateOutput) sessionResp {
	return sessionResp{
		Token:     o.Token,
		UserID:    o.UserID,
		Username:  o.Username,
		ExpiresAt: o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newMeResp(sc model.Scope) meResp {
	return meResp{UserID: sc.UserID, Username: sc.Username, Role: sc.Role}
}

func sameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

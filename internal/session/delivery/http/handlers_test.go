package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spyglass-srv/config"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/session"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct{}

func (fakeTokens) Verify(token string) (scope.Payload, error) {
	return scope.Payload{UserID: "guest-1", Role: model.RoleGuest}, nil
}

func (fakeTokens) CreateToken(p scope.Payload) (string, error) { return "token", nil }

type fakeUseCase struct {
	in  session.CreateInput
	err error
}

func (f *fakeUseCase) Create(ctx context.Context, input session.CreateInput) (session.CreateOutput, error) {
	f.in = input
	if f.err != nil {
		return session.CreateOutput{}, f.err
	}
	return session.CreateOutput{
		Token:     "signed",
		UserID:    "guest-1",
		Username:  input.Username,
		ExpiresAt: time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeUseCase) Me(ctx context.Context, sc model.Scope) (model.Scope, error) {
	return sc, nil
}

var cookieCfg = config.CookieConfig{Name: "spyglass_session", MaxAge: 3600, SameSite: "Lax"}

func newTestRouter(uc session.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), fakeTokens{}, cookieCfg)
	r := gin.New()
	r.Use(mw.Locale())
	New(log.NewNop(), uc, cookieCfg, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func TestCreateHandler(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data sessionResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "signed", env.Data.Token)
		assert.Equal(t, "2026-05-08T00:00:00Z", env.Data.ExpiresAt)

		cookie := w.Result().Cookies()
		require.Len(t, cookie, 1)
		assert.Equal(t, "spyglass_session", cookie[0].Name)
		assert.Equal(t, "signed", cookie[0].Value)
		assert.True(t, cookie[0].HttpOnly)
	})

	t.Run("with username", func(t *testing.T) {
		uc := &fakeUseCase{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"username":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newTestRouter(uc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ana", uc.in.Username)
	})

	t.Run("username too long", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"username":"x"}`))
		w := httptest.NewRecorder()
		newTestRouter(&fakeUseCase{err: session.ErrUsernameTooLong}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Nome de usuário muito longo.")
	})
}

func TestMeHandler(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sessions/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/me", nil)
	req.AddCookie(&http.Cookie{Name: "spyglass_session", Value: "token"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"guest-1"`)
}

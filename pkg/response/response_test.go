package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "spyglass-srv/pkg/errors"
	"spyglass-srv/pkg/locale"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(lang string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	c.Request = req.WithContext(locale.SetLocaleToContext(req.Context(), lang))
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestError(t *testing.T) {
	tcs := map[string]struct {
		err        error
		lang       string
		wantStatus int
		wantMsg    string
	}{
		"http error translated": {
			err:        pkgErrors.NewHTTPError(http.StatusNotFound, "history.not_found"),
			lang:       locale.EN,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Analysis not found in history.",
		},
		"http error default locale": {
			err:        pkgErrors.NewHTTPError(http.StatusNotFound, "history.not_found"),
			lang:       locale.PT,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Análise não encontrada no histórico.",
		},
		"validation errors": {
			err:        pkgErrors.ValidationErrors{{Field: "competitors", Message: "required"}},
			lang:       locale.EN,
			wantStatus: http.StatusBadRequest,
		},
		"unknown error": {
			err:        errors.New("boom"),
			lang:       locale.EN,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c, w := newContext(tc.lang)
			Error(c, tc.err, nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decode(t, w)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, resp.Message)
			}
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestOK(t *testing.T) {
	c, w := newContext(locale.EN)
	OK(c, map[string]int{"sections": 4})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, ErrorCodeSuccess, resp.ErrorCode)
	assert.Equal(t, map[string]any{"sections": float64(4)}, resp.Data)
}

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"spyglass-srv/config"
	"spyglass-srv/pkg/locale"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeManager struct {
	valid string
}

func (f fakeManager) Verify(token string) (scope.Payload, error) {
	if token != f.valid {
		return scope.Payload{}, errors.New("invalid token")
	}
	return scope.Payload{UserID: "user-1", Role: "GUEST"}, nil
}

func (f fakeManager) CreateToken(p scope.Payload) (string, error) {
	return f.valid, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), fakeManager{valid: "good"}, config.CookieConfig{Name: "spyglass_session"})

	r := gin.New()
	r.Use(mw.Locale())
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	r.GET("/lang", func(c *gin.Context) {
		c.String(http.StatusOK, locale.GetLang(c.Request.Context()))
	})
	return r
}

func TestAuth(t *testing.T) {
	r := newRouter()

	tcs := map[string]struct {
		prepare  func(req *http.Request)
		wantCode int
	}{
		"bearer header": {
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer good") },
			wantCode: http.StatusOK,
		},
		"cookie": {
			prepare: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "spyglass_session", Value: "good"})
			},
			wantCode: http.StatusOK,
		},
		"query token": {
			prepare:  func(req *http.Request) { req.URL.RawQuery = "token=good" },
			wantCode: http.StatusOK,
		},
		"missing": {
			prepare:  func(req *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		"invalid": {
			prepare:  func(req *http.Request) { req.Header.Set("Authorization", "Bearer bad") },
			wantCode: http.StatusUnauthorized,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tc.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, "user-1", w.Body.String())
			}
		})
	}
}

func TestLocale(t *testing.T) {
	r := newRouter()

	tcs := map[string]struct {
		headers map[string]string
		want    string
	}{
		"default":         {headers: nil, want: locale.PT},
		"lang header":     {headers: map[string]string{"lang": "en"}, want: locale.EN},
		"accept language": {headers: map[string]string{"Accept-Language": "en-US,en;q=0.9"}, want: locale.EN},
		"unknown":         {headers: map[string]string{"lang": "fr"}, want: locale.PT},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/lang", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(log.NewNop(), nil))
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected error")
	})
	r.GET("/stream-panic", func(c *gin.Context) {
		c.String(http.StatusOK, "event: ping\n\n")
		panic("stream broke")
	})

	t.Run("before writing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "error_code")
	})

	t.Run("after writing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream-panic", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "event: ping\n\n", w.Body.String())
	})
}

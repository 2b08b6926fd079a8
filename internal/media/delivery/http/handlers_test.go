package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spyglass-srv/config"
	"spyglass-srv/internal/media"
	"spyglass-srv/internal/middleware"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens struct{}

func (fakeTokens) Verify(token string) (scope.Payload, error) {
	return scope.Payload{UserID: "alice", Role: model.RoleGuest}, nil
}

func (fakeTokens) CreateToken(p scope.Payload) (string, error) { return "token", nil }

type fakeUseCase struct {
	media.UseCase

	err      error
	editIn   media.EditImageInput
	speechIn media.SpeechInput
	videoIn  media.CreateVideoJobInput
	jobSc    model.Scope
	job      media.VideoJobOutput
}

func (f *fakeUseCase) EditImage(ctx context.Context, sc model.Scope, input media.EditImageInput) (media.EditImageOutput, error) {
	f.editIn = input
	return media.EditImageOutput{Image: []byte("edited"), MimeType: "image/png"}, f.err
}

func (f *fakeUseCase) GenerateSpeech(ctx context.Context, sc model.Scope, input media.SpeechInput) (media.SpeechOutput, error) {
	f.speechIn = input
	return media.SpeechOutput{
		Voice:      "Kore",
		ObjectName: "alice/1.wav",
		URL:        "https://files.local/alice/1.wav",
		ExpiresAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:   1500 * time.Millisecond,
	}, f.err
}

func (f *fakeUseCase) CreateVideoJob(ctx context.Context, sc model.Scope, input media.CreateVideoJobInput) (media.VideoJobOutput, error) {
	f.videoIn = input
	return f.job, f.err
}

func (f *fakeUseCase) GetVideoJob(ctx context.Context, sc model.Scope, input media.GetVideoJobInput) (media.VideoJobOutput, error) {
	f.jobSc = sc
	if input.JobID != f.job.Job.ID {
		return media.VideoJobOutput{}, media.ErrVideoJobNotFound
	}
	return f.job, f.err
}

func newTestRouter(uc media.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), fakeTokens{}, config.CookieConfig{Name: "spyglass_session"})
	r := gin.New()
	r.Use(mw.Locale())
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group(""), mw)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestEditImageHandler(t *testing.T) {
	img := base64.StdEncoding.EncodeToString([]byte("png"))

	t.Run("accepts data urls", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/v1/media/images/edit",
			`{"image_data":"data:image/png;base64,`+img+`","mime_type":"image/png","prompt":"add a hat"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []byte("png"), uc.editIn.Image)
		var data editImageResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("edited")), data.ImageData)
	})

	t.Run("invalid base64", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/media/images/edit",
			`{"image_data":"%%%","mime_type":"image/png","prompt":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generation failure", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeUseCase{err: media.ErrGenerationFailed}), http.MethodPost, "/api/v1/media/images/edit",
			`{"image_data":"`+img+`","mime_type":"image/png","prompt":"x"}`)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Falha ao gerar a mídia. Tente novamente.", decode(t, w).Message)
	})
}

func TestGenerateSpeechHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := doRequest(newTestRouter(uc), http.MethodPost, "/api/v1/media/speech", `{"text":"olá","voice_name":"Kore"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, media.SpeechInput{Text: "olá", Voice: "Kore"}, uc.speechIn)
		var data speechResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, int64(1500), data.DurationMs)
		assert.Equal(t, "2026-01-01T00:00:00Z", data.ExpiresAt)
	})

	t.Run("invalid voice", func(t *testing.T) {
		w := doRequest(newTestRouter(&fakeUseCase{err: media.ErrInvalidVoice}), http.MethodPost, "/api/v1/media/speech", `{"text":"olá","voice_name":"Robot"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Voz inválida.", decode(t, w).Message)
	})
}

func TestVideoJobHandlers(t *testing.T) {
	uc := &fakeUseCase{job: media.VideoJobOutput{
		Job: model.VideoJob{ID: "job-1", Owner: "alice", Status: model.VideoJobDone},
		URL: "https://files.local/video.mp4",
	}}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodPost, "/api/v1/media/videos",
		`{"image_data":"`+base64.StdEncoding.EncodeToString([]byte("img"))+`","mime_type":"image/png","prompt":"p","aspect_ratio":"9:16"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "9:16", uc.videoIn.AspectRatio)

	w = doRequest(r, http.MethodGet, "/api/v1/media/videos/job-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", uc.jobSc.UserID)
	var data videoJobResp
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "DONE", data.Status)
	assert.Equal(t, "https://files.local/video.mp4", data.URL)

	w = doRequest(r, http.MethodGet, "/api/v1/media/videos/other", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Geração de vídeo não encontrada.", decode(t, w).Message)
}

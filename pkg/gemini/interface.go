package gemini

import (
	"context"
	"errors"

	pkghttp "spyglass-srv/pkg/http"

	"golang.org/x/time/rate"
)

var (
	ErrAPIKeyRequired = errors.New("gemini: API key is required")
	ErrNoContent      = errors.New("gemini: no content generated")
)

// IGemini defines the interface for the Google Gemini API.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error)
	// GenerateSpeech returns raw 16-bit little-endian mono PCM at 24kHz.
	GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error)
	// EditImage returns the edited image bytes and their mime type.
	EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error)
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
	StartVideo(ctx context.Context, req VideoRequest) (string, error)
	GetOperation(ctx context.Context, name string) (Operation, error)
	Download(ctx context.Context, uri string) ([]byte, error)
}

// NewGemini creates a new Gemini client. Models default to the constants in
// this package when empty.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.APIRoot == "" {
		cfg.APIRoot = APIRoot
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = DefaultSpeechModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.VideoModel == "" {
		cfg.VideoModel = DefaultVideoModel
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = DefaultTranscriptionModel
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &geminiImpl{
		apiKey:  cfg.APIKey,
		apiRoot: cfg.APIRoot,
		cfg:     cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:      cfg.Timeout,
			Retries:      pkghttp.DefaultRetries,
			RetryWait:    pkghttp.DefaultRetryWait,
			MaxRetryWait: pkghttp.DefaultMaxRetryWait,
		}),
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}, nil
}

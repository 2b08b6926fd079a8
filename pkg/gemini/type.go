package gemini

import (
	"fmt"
	"time"

	pkghttp "spyglass-srv/pkg/http"

	"golang.org/x/time/rate"
)

// GeminiConfig holds the configuration for the Gemini client
type GeminiConfig struct {
	APIKey             string
	APIRoot            string
	Model              string
	SpeechModel        string
	ImageModel         string
	VideoModel         string
	TranscriptionModel string
	RequestsPerSecond  float64
	Burst              int
	Timeout            time.Duration
}

// geminiImpl implements IGemini using the Google Gemini REST API.
type geminiImpl struct {
	apiKey     string
	apiRoot    string
	cfg        GeminiConfig
	httpClient pkghttp.IClient
	limiter    *rate.Limiter
}

// APIError is returned when the API answers with a non-200 status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Gemini API returned status: %d, body: %s", e.StatusCode, e.Body)
}

// GenerateOption customizes a Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	model        string
	googleSearch bool
}

// WithModel overrides the text model for one call.
func WithModel(model string) GenerateOption {
	return func(o *generateOptions) { o.model = model }
}

// WithGoogleSearch grounds the generation with Google Search.
func WithGoogleSearch() GenerateOption {
	return func(o *generateOptions) { o.googleSearch = true }
}

// VideoRequest describes an image-to-video generation.
type VideoRequest struct {
	Prompt      string
	Image       []byte
	MimeType    string
	AspectRatio string
}

// Operation is the state of a long-running video generation.
type Operation struct {
	Name     string
	Done     bool
	Error    string
	VideoURI string
}

// Request defines the request body for Generate Content API
type Request struct {
	Contents         []Content         `json:"contents"`
	Tools            []Tool            `json:"tools,omitempty"`
	SafetySettings   []SafetySetting   `json:"safetySettings,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single content block
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part represents a part of the content (text or blob)
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Blob is base64 inline media.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type Tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type GenerationConfig struct {
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

// Response defines the response body from Generate Content API
type Response struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
}

// Candidate represents a generated candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents token usage
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type videoInstance struct {
	Prompt string      `json:"prompt"`
	Image  *videoImage `json:"image,omitempty"`
}

type videoImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

type videoParameters struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	Resolution  string `json:"resolution"`
	SampleCount int    `json:"sampleCount"`
}

type videoRequest struct {
	Instances  []videoInstance `json:"instances"`
	Parameters videoParameters `json:"parameters"`
}

type operationResponse struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response *struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response,omitempty"`
}

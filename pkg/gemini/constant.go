package gemini

import "time"

const (
	// APIRoot is the Generative Language REST root.
	APIRoot = "https://generativelanguage.googleapis.com/v1beta"

	DefaultModel              = "gemini-2.5-pro"
	FlashModel                = "gemini-2.5-flash"
	DefaultSpeechModel        = "gemini-2.5-flash-preview-tts"
	DefaultImageModel         = "gemini-2.5-flash-image"
	DefaultVideoModel         = "veo-3.1-fast-generate-preview"
	DefaultTranscriptionModel = FlashModel

	DefaultVoice        = "Kore"
	DefaultTimeout      = 120 * time.Second
	DefaultRPS          = 2.0
	DefaultBurst        = 4
	VideoResolution     = "720p"
	TranscriptionPrompt = "Transcreva este áudio em português."

	apiKeyHeader = "x-goog-api-key"
)

// Voices supported by the speech model.
var Voices = []string{"Zephyr", "Kore", "Puck", "Charon", "Fenrir"}

// Aspect ratios accepted for video generation.
const (
	AspectLandscape = "16:9"
	AspectPortrait  = "9:16"
)

const (
	modalityAudio = "AUDIO"
	modalityImage = "IMAGE"
)

var harmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// IsVoice reports whether name is one of the prebuilt voices.
func IsVoice(name string) bool {
	for _, v := range Voices {
		if v == name {
			return true
		}
	}
	return false
}

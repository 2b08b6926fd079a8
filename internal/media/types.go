package media

import (
	"time"

	"spyglass-srv/internal/model"
)

const (
	DefaultVideoPollInterval = 10 * time.Second
	DefaultPresignExpiry     = time.Hour

	ContentTypeWAV = "audio/wav"
	ContentTypeMP4 = "video/mp4"
)

// Config holds the buckets and timings of the media usecase.
type Config struct {
	SpeechBucket      string
	VideoBucket       string
	PresignExpiry     time.Duration
	VideoPollInterval time.Duration
}

type EditImageInput struct {
	Image    []byte
	MimeType string
	Prompt   string
}

type EditImageOutput struct {
	Image    []byte
	MimeType string
}

type TranscribeInput struct {
	Audio    []byte
	MimeType string
}

type TranscribeOutput struct {
	Text string
}

type SpeechInput struct {
	Text  string
	Voice string
}

type SpeechOutput struct {
	Voice      string
	ObjectName string
	URL        string
	ExpiresAt  time.Time
	Duration   time.Duration
}

type SummaryInput struct {
	ReportContent string
}

type SummaryOutput struct {
	Summary string
}

type CreateVideoJobInput struct {
	Image       []byte
	MimeType    string
	Prompt      string
	AspectRatio string
}

type GetVideoJobInput struct {
	JobID string
}

// VideoJobOutput carries a download URL once the job is done.
type VideoJobOutput struct {
	Job       model.VideoJob
	URL       string
	ExpiresAt time.Time
}

// VideoJobTask is the queued unit of work for one video job. The source image
// travels through object storage, not the queue.
type VideoJobTask struct {
	JobID       string
	Owner       string
	Prompt      string
	ImageObject string
	MimeType    string
	AspectRatio string
}

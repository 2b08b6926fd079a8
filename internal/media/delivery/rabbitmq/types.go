package rabbitmq

import "time"

// VideoJobMessage is the body of a queued video generation.
type VideoJobMessage struct {
	JobID       string    `json:"job_id"`
	Owner       string    `json:"owner"`
	Prompt      string    `json:"prompt"`
	ImageObject string    `json:"image_object"`
	MimeType    string    `json:"mime_type"`
	AspectRatio string    `json:"aspect_ratio"`
	QueuedAt    time.Time `json:"queued_at"`
}

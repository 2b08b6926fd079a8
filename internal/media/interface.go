package media

import (
	"context"

	"spyglass-srv/internal/model"
)

// UseCase groups the standalone media tools: image editing, transcription,
// speech, dramatic summaries and image-to-video jobs.
//
//go:generate mockery --name UseCase
type UseCase interface {
	EditImage(ctx context.Context, sc model.Scope, input EditImageInput) (EditImageOutput, error)
	Transcribe(ctx context.Context, sc model.Scope, input TranscribeInput) (TranscribeOutput, error)
	GenerateSpeech(ctx context.Context, sc model.Scope, input SpeechInput) (SpeechOutput, error)
	Summarize(ctx context.Context, sc model.Scope, input SummaryInput) (SummaryOutput, error)
	CreateVideoJob(ctx context.Context, sc model.Scope, input CreateVideoJobInput) (VideoJobOutput, error)
	GetVideoJob(ctx context.Context, sc model.Scope, input GetVideoJobInput) (VideoJobOutput, error)
	// ProcessVideoJob runs a queued job to completion. It is called by the worker.
	ProcessVideoJob(ctx context.Context, task VideoJobTask) error
}

// Producer hands video jobs to the worker.
type Producer interface {
	PublishVideoJob(ctx context.Context, task VideoJobTask) error
}

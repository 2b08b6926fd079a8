package usecase

import (
	"context"
	"strings"

	"spyglass-srv/internal/media"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/gemini"
)

func (uc *implUseCase) EditImage(ctx context.Context, sc model.Scope, input media.EditImageInput) (media.EditImageOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if len(input.Image) == 0 || input.MimeType == "" || prompt == "" {
		return media.EditImageOutput{}, media.ErrImageRequired
	}

	img, mimeType, err := uc.gemini.EditImage(ctx, input.Image, input.MimeType, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.EditImage: EditImage failed: %v", err)
		return media.EditImageOutput{}, media.ErrGenerationFailed
	}

	return media.EditImageOutput{Image: img, MimeType: mimeType}, nil
}

func (uc *implUseCase) Transcribe(ctx context.Context, sc model.Scope, input media.TranscribeInput) (media.TranscribeOutput, error) {
	if len(input.Audio) == 0 || input.MimeType == "" {
		return media.TranscribeOutput{}, media.ErrAudioRequired
	}

	text, err := uc.gemini.Transcribe(ctx, input.Audio, input.MimeType)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.Transcribe: Transcribe failed: %v", err)
		return media.TranscribeOutput{}, media.ErrGenerationFailed
	}

	return media.TranscribeOutput{Text: strings.TrimSpace(text)}, nil
}

// Summarize turns a report into a short trailer-style script.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, input media.SummaryInput) (media.SummaryOutput, error) {
	report := strings.TrimSpace(input.ReportContent)
	if report == "" {
		return media.SummaryOutput{}, media.ErrReportRequired
	}

	summary, err := uc.gemini.Generate(ctx, buildSummaryPrompt(report), gemini.WithModel(gemini.FlashModel))
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.Summarize: Generate failed: %v", err)
		return media.SummaryOutput{}, media.ErrGenerationFailed
	}

	return media.SummaryOutput{Summary: strings.TrimSpace(summary)}, nil
}

package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"spyglass-srv/internal/media"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/audio"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/minio"
)

// GenerateSpeech synthesizes text, stores the WAV file and returns a
// presigned download URL for it.
func (uc *implUseCase) GenerateSpeech(ctx context.Context, sc model.Scope, input media.SpeechInput) (media.SpeechOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return media.SpeechOutput{}, media.ErrTextRequired
	}
	voice := input.Voice
	if voice == "" {
		voice = gemini.DefaultVoice
	}
	if !gemini.IsVoice(voice) {
		return media.SpeechOutput{}, media.ErrInvalidVoice
	}

	pcm, err := uc.gemini.GenerateSpeech(ctx, text, voice)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.GenerateSpeech: GenerateSpeech failed: %v", err)
		return media.SpeechOutput{}, media.ErrGenerationFailed
	}

	wav, buf, err := audio.PCMToWAV(pcm, audio.DefaultSampleRate, audio.DefaultChannels)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.GenerateSpeech: PCMToWAV failed: %v", err)
		return media.SpeechOutput{}, media.ErrGenerationFailed
	}

	object := fmt.Sprintf("%s/%s.wav", sc.UserID, uc.newID())
	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.SpeechBucket,
		ObjectName:   object,
		OriginalName: "speech.wav",
		Reader:       bytes.NewReader(wav),
		Size:         int64(len(wav)),
		ContentType:  media.ContentTypeWAV,
		Metadata:     map[string]string{"voice": voice},
	}); err != nil {
		uc.l.Errorf(ctx, "media.usecase.GenerateSpeech: UploadFile failed: %v", err)
		return media.SpeechOutput{}, media.ErrStorageFailed
	}

	url, err := uc.presign(ctx, uc.cfg.SpeechBucket, object)
	if err != nil {
		return media.SpeechOutput{}, err
	}

	return media.SpeechOutput{
		Voice:      voice,
		ObjectName: object,
		URL:        url.URL,
		ExpiresAt:  url.ExpiresAt,
		Duration:   buf.Duration(),
	}, nil
}

func (uc *implUseCase) presign(ctx context.Context, bucket, object string) (*minio.PresignedURLResponse, error) {
	url, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: bucket,
		ObjectName: object,
		Method:     minio.MethodGET,
		Expiry:     uc.cfg.PresignExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.presign: GetPresignedDownloadURL %s/%s failed: %v", bucket, object, err)
		return nil, media.ErrStorageFailed
	}
	return url, nil
}

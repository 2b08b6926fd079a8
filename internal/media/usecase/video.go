package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"spyglass-srv/internal/media"
	"spyglass-srv/internal/media/repository"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/minio"
)

// CreateVideoJob stores the source image, records a pending job and queues
// it for the worker.
func (uc *implUseCase) CreateVideoJob(ctx context.Context, sc model.Scope, input media.CreateVideoJobInput) (media.VideoJobOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if len(input.Image) == 0 || input.MimeType == "" || prompt == "" {
		return media.VideoJobOutput{}, media.ErrImageRequired
	}
	if input.AspectRatio != gemini.AspectLandscape && input.AspectRatio != gemini.AspectPortrait {
		return media.VideoJobOutput{}, media.ErrInvalidAspectRatio
	}

	now := uc.now().UTC()
	job := model.VideoJob{
		ID:        uc.newID(),
		Owner:     sc.UserID,
		Status:    model.VideoJobPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	imageObject := fmt.Sprintf("%s/%s/source", job.Owner, job.ID)

	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.cfg.VideoBucket,
		ObjectName:  imageObject,
		Reader:      bytes.NewReader(input.Image),
		Size:        int64(len(input.Image)),
		ContentType: input.MimeType,
	}); err != nil {
		uc.l.Errorf(ctx, "media.usecase.CreateVideoJob: UploadFile failed: %v", err)
		return media.VideoJobOutput{}, media.ErrStorageFailed
	}

	if err := uc.repo.Save(ctx, job); err != nil {
		uc.l.Errorf(ctx, "media.usecase.CreateVideoJob: Save failed: %v", err)
		return media.VideoJobOutput{}, media.ErrStorageFailed
	}

	task := media.VideoJobTask{
		JobID:       job.ID,
		Owner:       job.Owner,
		Prompt:      prompt,
		ImageObject: imageObject,
		MimeType:    input.MimeType,
		AspectRatio: input.AspectRatio,
	}
	if err := uc.producer.PublishVideoJob(ctx, task); err != nil {
		uc.l.Errorf(ctx, "media.usecase.CreateVideoJob: PublishVideoJob failed: %v", err)
		uc.finish(ctx, &job, model.VideoJobFailed, "", "queue unavailable")
		return media.VideoJobOutput{}, media.ErrGenerationFailed
	}

	return media.VideoJobOutput{Job: job}, nil
}

func (uc *implUseCase) GetVideoJob(ctx context.Context, sc model.Scope, input media.GetVideoJobInput) (media.VideoJobOutput, error) {
	job, err := uc.repo.Get(ctx, input.JobID)
	if errors.Is(err, repository.ErrJobNotFound) {
		return media.VideoJobOutput{}, media.ErrVideoJobNotFound
	}
	if err != nil {
		return media.VideoJobOutput{}, media.ErrStorageFailed
	}
	if job.Owner != sc.UserID {
		return media.VideoJobOutput{}, media.ErrVideoJobNotFound
	}

	o := media.VideoJobOutput{Job: job}
	if job.Status == model.VideoJobDone && job.Object != "" {
		url, err := uc.presign(ctx, uc.cfg.VideoBucket, job.Object)
		if err != nil {
			return media.VideoJobOutput{}, err
		}
		o.URL = url.URL
		o.ExpiresAt = url.ExpiresAt
	}
	return o, nil
}

// ProcessVideoJob starts the generation, or resumes polling an operation that
// was started before a redelivery, and stores the finished video. Failures
// are recorded on the job; only context errors are returned.
func (uc *implUseCase) ProcessVideoJob(ctx context.Context, task media.VideoJobTask) error {
	job, err := uc.repo.Get(ctx, task.JobID)
	if err != nil {
		uc.l.Errorf(ctx, "media.usecase.ProcessVideoJob: Get %s failed: %v", task.JobID, err)
		return nil
	}
	if job.IsTerminal() {
		uc.l.Infof(ctx, "media.usecase.ProcessVideoJob: job %s already %s", job.ID, job.Status)
		return nil
	}

	if job.Operation == "" {
		op, err := uc.startVideo(ctx, task)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			uc.l.Errorf(ctx, "media.usecase.ProcessVideoJob: start %s failed: %v", job.ID, err)
			uc.finish(ctx, &job, model.VideoJobFailed, "", err.Error())
			return nil
		}
		job.Operation = op
	}

	job.Status = model.VideoJobRunning
	job.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Save(ctx, job); err != nil {
		uc.l.Warnf(ctx, "media.usecase.ProcessVideoJob: Save %s failed: %v", job.ID, err)
	}

	op, err := uc.waitForOperation(ctx, job.Operation)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		uc.l.Errorf(ctx, "media.usecase.ProcessVideoJob: poll %s failed: %v", job.ID, err)
		uc.finish(ctx, &job, model.VideoJobFailed, "", err.Error())
		return nil
	}
	if op.Error != "" || op.VideoURI == "" {
		reason := op.Error
		if reason == "" {
			reason = "no video returned"
		}
		uc.finish(ctx, &job, model.VideoJobFailed, "", reason)
		return nil
	}

	object, err := uc.storeVideo(ctx, job, op.VideoURI)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		uc.l.Errorf(ctx, "media.usecase.ProcessVideoJob: store %s failed: %v", job.ID, err)
		uc.finish(ctx, &job, model.VideoJobFailed, "", err.Error())
		return nil
	}

	uc.finish(ctx, &job, model.VideoJobDone, object, "")
	if err := uc.storage.DeleteFile(ctx, uc.cfg.VideoBucket, task.ImageObject); err != nil {
		uc.l.Warnf(ctx, "media.usecase.ProcessVideoJob: remove source of %s failed: %v", job.ID, err)
	}
	uc.l.Infof(ctx, "media.usecase.ProcessVideoJob: job %s done", job.ID)
	return nil
}

func (uc *implUseCase) startVideo(ctx context.Context, task media.VideoJobTask) (string, error) {
	rc, _, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
		BucketName: uc.cfg.VideoBucket,
		ObjectName: task.ImageObject,
	})
	if err != nil {
		return "", fmt.Errorf("download source image: %w", err)
	}
	defer rc.Close()

	img, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read source image: %w", err)
	}

	return uc.gemini.StartVideo(ctx, gemini.VideoRequest{
		Prompt:      task.Prompt,
		Image:       img,
		MimeType:    task.MimeType,
		AspectRatio: task.AspectRatio,
	})
}

// waitForOperation polls at a fixed interval until the operation is done.
// There is no deadline besides ctx.
func (uc *implUseCase) waitForOperation(ctx context.Context, name string) (gemini.Operation, error) {
	ticker := time.NewTicker(uc.cfg.VideoPollInterval)
	defer ticker.Stop()

	for {
		op, err := uc.gemini.GetOperation(ctx, name)
		if err != nil {
			return gemini.Operation{}, err
		}
		if op.Done {
			return op, nil
		}

		select {
		case <-ctx.Done():
			return gemini.Operation{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (uc *implUseCase) storeVideo(ctx context.Context, job model.VideoJob, uri string) (string, error) {
	video, err := uc.gemini.Download(ctx, uri)
	if err != nil {
		return "", fmt.Errorf("download video: %w", err)
	}

	object := fmt.Sprintf("%s/%s/video.mp4", job.Owner, job.ID)
	if _, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.cfg.VideoBucket,
		ObjectName:   object,
		OriginalName: job.ID + ".mp4",
		Reader:       bytes.NewReader(video),
		Size:         int64(len(video)),
		ContentType:  media.ContentTypeMP4,
	}); err != nil {
		return "", fmt.Errorf("upload video: %w", err)
	}
	return object, nil
}

func (uc *implUseCase) finish(ctx context.Context, job *model.VideoJob, status model.VideoJobStatus, object, reason string) {
	job.Status = status
	job.Object = object
	job.Error = reason
	job.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Save(ctx, *job); err != nil {
		uc.l.Errorf(ctx, "media.usecase.finish: Save %s failed: %v", job.ID, err)
	}
}

package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"spyglass-srv/internal/narration"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/minio"
)

const (
	wavContentType = "audio/wav"
	// flushWait bounds each pending upload when Flush gets no deadline.
	flushWait = 10 * time.Second
)

type minioArchiver struct {
	l      log.Logger
	store  minio.AsyncUploader
	bucket string

	mu      sync.Mutex
	pending map[string]string // task id -> clip id
}

// NewArchiver queues every clip for upload to bucket as
// "<owner>/<clip id>.wav".
func NewArchiver(l log.Logger, store minio.AsyncUploader, bucket string) narration.Archiver {
	return &minioArchiver{
		l:       l,
		store:   store,
		bucket:  bucket,
		pending: map[string]string{},
	}
}

func (a *minioArchiver) Archive(ctx context.Context, clip narration.Clip) {
	owner := clip.Owner
	if owner == "" {
		owner = "anonymous"
	}
	taskID, err := a.store.UploadAsync(ctx, &minio.UploadRequest{
		BucketName:   a.bucket,
		ObjectName:   fmt.Sprintf("%s/%s.wav", owner, clip.ID),
		OriginalName: clip.ID + ".wav",
		Reader:       bytes.NewReader(clip.WAV),
		Size:         int64(len(clip.WAV)),
		ContentType:  wavContentType,
		Metadata: map[string]string{
			"voice": clip.Voice,
		},
	})
	if err != nil {
		a.l.Warnf(ctx, "narration.usecase.Archive: UploadAsync failed: %v", err)
		return
	}

	a.mu.Lock()
	a.pruneLocked(ctx)
	a.pending[taskID] = clip.ID
	a.mu.Unlock()
	a.l.Debugf(ctx, "narration.usecase.Archive: queued clip %s as task %s", clip.ID, taskID)
}

// pruneLocked forgets uploads that finished or were already cleaned up.
func (a *minioArchiver) pruneLocked(ctx context.Context) {
	for taskID, clipID := range a.pending {
		progress, err := a.store.GetUploadStatus(taskID)
		if err != nil {
			delete(a.pending, taskID)
			continue
		}
		if !progress.Status.IsFinal() {
			continue
		}
		if progress.Status == minio.UploadStatusFailed {
			a.l.Warnf(ctx, "narration.usecase.pruneLocked: clip %s not archived: %s", clipID, progress.Error)
		}
		delete(a.pending, taskID)
	}
}

// Flush waits for queued clips until ctx's deadline and cancels the uploads
// still running after it.
func (a *minioArchiver) Flush(ctx context.Context) {
	a.mu.Lock()
	pending := a.pending
	a.pending = map[string]string{}
	a.mu.Unlock()

	for taskID, clipID := range pending {
		wait := flushWait
		if deadline, ok := ctx.Deadline(); ok {
			wait = time.Until(deadline)
		}

		if wait > 0 {
			result, err := a.store.WaitForUpload(taskID, wait)
			if err == nil {
				if result.Error != nil {
					a.l.Warnf(ctx, "narration.usecase.Flush: clip %s not archived: %v", clipID, result.Error)
				}
				continue
			}
		}

		if err := a.store.CancelUpload(taskID); err != nil {
			a.l.Debugf(ctx, "narration.usecase.Flush: CancelUpload %s: %v", taskID, err)
			continue
		}
		a.l.Warnf(ctx, "narration.usecase.Flush: gave up on clip %s", clipID)
	}
}

package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStatusTracker(t *testing.T) {
	t.Run("merges progress", func(t *testing.T) {
		tracker := newUploadStatusTracker()
		tracker.updateStatus("t1", &UploadProgress{TaskID: "t1", TotalBytes: 1000, Status: UploadStatusPending})
		tracker.updateStatus("t1", &UploadProgress{TaskID: "t1", BytesUploaded: 500, Percentage: 50})

		got, ok := tracker.getStatus("t1")
		require.True(t, ok)
		assert.Equal(t, int64(1000), got.TotalBytes)
		assert.Equal(t, int64(500), got.BytesUploaded)
		assert.Equal(t, UploadStatusPending, got.Status)
	})

	t.Run("cancelled is sticky", func(t *testing.T) {
		tracker := newUploadStatusTracker()
		tracker.updateStatus("t1", &UploadProgress{TaskID: "t1", Status: UploadStatusCancelled})
		tracker.updateStatus("t1", &UploadProgress{TaskID: "t1", Status: UploadStatusUploading})

		got, _ := tracker.getStatus("t1")
		assert.Equal(t, UploadStatusCancelled, got.Status)
	})

	t.Run("cleanup drops old final tasks only", func(t *testing.T) {
		tracker := newUploadStatusTracker()
		tracker.updateStatus("old", &UploadProgress{Status: UploadStatusCompleted, UpdatedAt: time.Now().Add(-2 * time.Hour)})
		tracker.updateStatus("stuck", &UploadProgress{Status: UploadStatusPending, UpdatedAt: time.Now().Add(-2 * time.Hour)})
		tracker.updateStatus("recent", &UploadProgress{Status: UploadStatusCompleted, UpdatedAt: time.Now()})

		tracker.cleanupOldStatuses(time.Hour)

		_, ok := tracker.getStatus("old")
		assert.False(t, ok)
		_, ok = tracker.getStatus("stuck")
		assert.True(t, ok)
		_, ok = tracker.getStatus("recent")
		assert.True(t, ok)
	})
}

func TestAsyncUploadManager(t *testing.T) {
	t.Run("completes upload", func(t *testing.T) {
		mgr := newAsyncUploadManager(func(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
			data, err := io.ReadAll(req.Reader)
			if err != nil {
				return nil, err
			}
			return &FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName, Size: int64(len(data))}, nil
		}, 1, 2)
		mgr.start()
		defer mgr.stop()

		id, err := mgr.uploadAsync(context.Background(), &UploadRequest{
			BucketName: "spyglass-audio", ObjectName: "a.wav", Reader: strings.NewReader("hello"), Size: 5, ContentType: "audio/wav",
		})
		require.NoError(t, err)

		result, err := mgr.waitForUpload(id, 2*time.Second)
		require.NoError(t, err)
		require.NoError(t, result.Error)
		assert.Equal(t, int64(5), result.FileInfo.Size)

		status, err := mgr.getUploadStatus(id)
		require.NoError(t, err)
		assert.Equal(t, UploadStatusCompleted, status.Status)
		assert.Equal(t, float64(100), status.Percentage)
	})

	t.Run("records failure", func(t *testing.T) {
		boom := errors.New("boom")
		mgr := newAsyncUploadManager(func(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
			return nil, boom
		}, 1, 1)
		mgr.start()
		defer mgr.stop()

		id, err := mgr.uploadAsync(context.Background(), &UploadRequest{Reader: strings.NewReader("x"), Size: 1})
		require.NoError(t, err)

		result, err := mgr.waitForUpload(id, 2*time.Second)
		require.NoError(t, err)
		assert.ErrorIs(t, result.Error, boom)

		status, _ := mgr.getUploadStatus(id)
		assert.Equal(t, UploadStatusFailed, status.Status)
	})

	t.Run("cancel stops running upload", func(t *testing.T) {
		started := make(chan struct{})
		mgr := newAsyncUploadManager(func(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}, 1, 1)
		mgr.start()
		defer mgr.stop()

		id, err := mgr.uploadAsync(context.Background(), &UploadRequest{Reader: strings.NewReader("x"), Size: 1})
		require.NoError(t, err)
		<-started

		require.NoError(t, mgr.cancelUpload(id))
		result, err := mgr.waitForUpload(id, 2*time.Second)
		require.NoError(t, err)
		assert.ErrorIs(t, result.Error, context.Canceled)

		status, _ := mgr.getUploadStatus(id)
		assert.Equal(t, UploadStatusCancelled, status.Status)
		assert.Error(t, mgr.cancelUpload(id))
	})

	t.Run("not started", func(t *testing.T) {
		mgr := newAsyncUploadManager(nil, 1, 1)
		_, err := mgr.uploadAsync(context.Background(), &UploadRequest{})
		var se *StorageError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, ErrCodeInvalidState, se.Code)
	})

	t.Run("unknown task", func(t *testing.T) {
		mgr := newAsyncUploadManager(nil, 1, 1)
		_, err := mgr.getUploadStatus("missing")
		assert.Error(t, err)
		assert.Error(t, mgr.cancelUpload("missing"))
	})
}

func TestValidateUploadRequest(t *testing.T) {
	valid := func() *UploadRequest {
		return &UploadRequest{
			BucketName: "spyglass-video", ObjectName: "owner/job.mp4", Reader: strings.NewReader("v"), Size: 1, ContentType: "video/mp4",
		}
	}

	require.NoError(t, validateUploadRequest(valid()))

	tcs := map[string]func(r *UploadRequest){
		"bucket uppercase": func(r *UploadRequest) { r.BucketName = "Spyglass" },
		"no object":        func(r *UploadRequest) { r.ObjectName = "" },
		"leading slash":    func(r *UploadRequest) { r.ObjectName = "/a.mp4" },
		"dot segment":      func(r *UploadRequest) { r.ObjectName = "owner/../other/a.mp4" },
		"bucket hyphen":    func(r *UploadRequest) { r.BucketName = "-spyglass" },
		"too large":        func(r *UploadRequest) { r.Size = MaxFileSizeBytes + 1 },
		"no reader":        func(r *UploadRequest) { r.Reader = nil },
		"zero size":        func(r *UploadRequest) { r.Size = 0 },
		"no content type":  func(r *UploadRequest) { r.ContentType = "" },
	}
	for name, mutate := range tcs {
		t.Run(name, func(t *testing.T) {
			req := valid()
			mutate(req)
			err := validateUploadRequest(req)
			var se *StorageError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, ErrCodeInvalidInput, se.Code)
		})
	}
}

func TestDetermineContentDisposition(t *testing.T) {
	assert.Equal(t, DispositionInline, determineContentDisposition("audio/wav", DispositionAuto))
	assert.Equal(t, DispositionInline, determineContentDisposition("video/mp4", DispositionAuto))
	assert.Equal(t, DispositionAttachment, determineContentDisposition("application/zip", DispositionAuto))
	assert.Equal(t, DispositionAttachment, determineContentDisposition("video/mp4", DispositionAttachment))
	assert.Equal(t, DispositionAttachment, determineContentDisposition("video/mp4", ""))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewObjectNotFoundError("x")))
	assert.False(t, IsNotFound(NewConnectionError(errors.New("down"))))
	assert.False(t, IsNotFound(nil))
}

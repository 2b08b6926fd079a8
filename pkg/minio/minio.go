package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, attempts int) error {
	attempts = max(attempts, 1)
	var lastErr error
	wait := time.Second
	for i := 1; i <= attempts; i++ {
		if lastErr = m.Connect(ctx); lastErr == nil {
			return nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
	return fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(errors.New("not connected"))
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.asyncUploadMgr.stop()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	opts := minio.PutObjectOptions{ContentType: req.ContentType, UserMetadata: map[string]string{}}
	for k, v := range req.Metadata {
		opts.UserMetadata[k] = v
	}
	if req.OriginalName != "" {
		opts.UserMetadata["original-name"] = req.OriginalName
	}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:  req.BucketName,
		ObjectName:  req.ObjectName,
		Size:        info.Size,
		ContentType: req.ContentType,
		ETag:        info.ETag,
	}, nil
}

func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *DownloadHeaders, error) {
	if err := validateDownloadRequest(req); err != nil {
		return nil, nil, err
	}
	objInfo, err := m.minioClient.StatObject(ctx, req.BucketName, req.ObjectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "get_file_info")
	}
	object, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "download_file")
	}
	return object, generateDownloadHeaders(objInfo, req.Disposition), nil
}

func (m *implMinIO) GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error) {
	if req.Method == "" {
		req.Method = MethodGET
	}
	if err := validatePresignedURLRequest(req); err != nil {
		return nil, err
	}
	url, err := m.minioClient.PresignedGetObject(ctx, req.BucketName, req.ObjectName, req.Expiry, nil)
	if err != nil {
		return nil, handleMinIOError(err, "get_presigned_download_url")
	}
	return &PresignedURLResponse{
		URL:       url.String(),
		ExpiresAt: time.Now().Add(req.Expiry),
		Method:    MethodGET,
	}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, bucketName, objectName string) error {
	if err := validateObjectName(objectName); err != nil {
		return err
	}
	if err := m.minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_file")
	}
	return nil
}

func (m *implMinIO) UploadAsync(ctx context.Context, req *UploadRequest) (string, error) {
	if err := validateUploadRequest(req); err != nil {
		return "", err
	}
	return m.asyncUploadMgr.uploadAsync(ctx, req)
}

func (m *implMinIO) GetUploadStatus(taskID string) (*UploadProgress, error) {
	return m.asyncUploadMgr.getUploadStatus(taskID)
}

func (m *implMinIO) WaitForUpload(taskID string, timeout time.Duration) (*AsyncUploadResult, error) {
	return m.asyncUploadMgr.waitForUpload(taskID, timeout)
}

func (m *implMinIO) CancelUpload(taskID string) error {
	return m.asyncUploadMgr.cancelUpload(taskID)
}

func generateDownloadHeaders(objInfo minio.ObjectInfo, requested string) *DownloadHeaders {
	disposition := determineContentDisposition(objInfo.ContentType, requested)
	originalName := objInfo.UserMetadata["Original-Name"]
	if originalName == "" {
		originalName = objInfo.Key
	}
	headers := &DownloadHeaders{
		ContentType:        objInfo.ContentType,
		ContentDisposition: fmt.Sprintf("%s; filename=\"%s\"", disposition, originalName),
		ContentLength:      fmt.Sprintf("%d", objInfo.Size),
		LastModified:       objInfo.LastModified.Format(http.TimeFormat),
		ETag:               objInfo.ETag,
	}
	if disposition == DispositionInline {
		headers.CacheControl = cacheControlInline
	} else {
		headers.CacheControl = cacheControlAttachment
	}
	return headers
}

func determineContentDisposition(contentType, requested string) string {
	switch requested {
	case DispositionInline, DispositionAttachment:
		return requested
	case DispositionAuto:
		for _, viewable := range inlineContentTypes {
			if strings.HasPrefix(contentType, viewable) {
				return DispositionInline
			}
		}
	}
	return DispositionAttachment
}

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "":
		return &StorageError{Code: ErrCodeConnection, Message: "request failed", Operation: operation, Cause: err}
	case "NoSuchBucket":
		se := NewBucketNotFoundError(resp.BucketName)
		se.Operation, se.Cause = operation, err
		return se
	case "NoSuchKey":
		se := NewObjectNotFoundError(resp.Key)
		se.Operation, se.Cause = operation, err
		return se
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	default:
		return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code), Operation: operation, Cause: err}
	}
}

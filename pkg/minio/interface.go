package minio

import (
	"context"
	"io"
	"net/http"
	"time"

	"spyglass-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores narration clips, speech files and generated videos.
// Implementations are safe for concurrent use.
type MinIO interface {
	Lifecycle
	Buckets
	Objects
	AsyncUploader
}

type Lifecycle interface {
	// Connect lists buckets once to prove the credentials work.
	Connect(ctx context.Context) error
	// ConnectWithRetry doubles the wait after every failed attempt.
	ConnectWithRetry(ctx context.Context, attempts int) error
	HealthCheck(ctx context.Context) error
	// Close stops the async upload workers.
	Close() error
}

type Buckets interface {
	EnsureBucket(ctx context.Context, bucketName string) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
}

type Objects interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	// DownloadFile returns the object body, which the caller must close.
	DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *DownloadHeaders, error)
	GetPresignedDownloadURL(ctx context.Context, req *PresignedURLRequest) (*PresignedURLResponse, error)
	// DeleteFile succeeds for objects that do not exist.
	DeleteFile(ctx context.Context, bucketName, objectName string) error
}

// AsyncUploader queues uploads on a worker pool. The upload keeps running
// after the caller's ctx is cancelled.
type AsyncUploader interface {
	UploadAsync(ctx context.Context, req *UploadRequest) (taskID string, err error)
	GetUploadStatus(taskID string) (*UploadProgress, error)
	WaitForUpload(taskID string, timeout time.Duration) (*AsyncUploadResult, error)
	CancelUpload(taskID string) error
}

// NewMinIO builds the client and starts the async upload workers. It does
// not touch the network; call Connect or ConnectWithRetry next.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        transportMaxIdleConns,
		MaxIdleConnsPerHost: transportMaxIdleConnsPerHost,
		IdleConnTimeout:     transportIdleConnTimeout,
		DisableCompression:  transportDisableCompression,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	impl := &implMinIO{minioClient: client, config: cfg}
	// Zero sizes fall back to the package defaults inside the manager.
	impl.asyncUploadMgr = newAsyncUploadManager(impl.UploadFile, cfg.AsyncUploadWorkers, cfg.AsyncUploadQueueSize)
	impl.asyncUploadMgr.start()
	return impl, nil
}

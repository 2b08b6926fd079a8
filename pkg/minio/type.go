package minio

import (
	"context"
	"io"
	"sync"
	"time"

	"spyglass-srv/config"

	"github.com/minio/minio-go/v7"
)

type implMinIO struct {
	minioClient    *minio.Client
	config         *config.MinIOConfig
	mu             sync.RWMutex
	connected      bool
	asyncUploadMgr *asyncUploadManager
}

// FileInfo describes a stored object.
type FileInfo struct {
	BucketName  string
	ObjectName  string
	Size        int64
	ContentType string
	ETag        string
}

// UploadRequest puts Size bytes from Reader at BucketName/ObjectName.
// OriginalName becomes the download filename.
type UploadRequest struct {
	BucketName   string
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// DownloadRequest reads an object. Disposition is one of the Disposition
// constants and defaults to attachment.
type DownloadRequest struct {
	BucketName  string
	ObjectName  string
	Disposition string
}

type PresignedURLRequest struct {
	BucketName string
	ObjectName string
	Method     string
	Expiry     time.Duration
}

type PresignedURLResponse struct {
	URL       string
	ExpiresAt time.Time
	Method    string
}

// DownloadHeaders are ready to copy onto an HTTP response.
type DownloadHeaders struct {
	ContentType        string
	ContentDisposition string
	ContentLength      string
	LastModified       string
	ETag               string
	CacheControl       string
}

type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusCompleted UploadStatus = "completed"
	UploadStatusFailed    UploadStatus = "failed"
	UploadStatusCancelled UploadStatus = "cancelled"
)

// IsFinal reports whether an upload in this status will not change again.
func (s UploadStatus) IsFinal() bool {
	return s == UploadStatusCompleted || s == UploadStatusFailed || s == UploadStatusCancelled
}

// AsyncUploadResult is kept for a finished task until cleanup.
type AsyncUploadResult struct {
	TaskID    string
	FileInfo  *FileInfo
	Error     error
	StartTime time.Time
	Duration  time.Duration
}

// UploadProgress is a snapshot of a queued or running upload.
type UploadProgress struct {
	TaskID        string
	Status        UploadStatus
	BytesUploaded int64
	TotalBytes    int64
	Percentage    float64
	Error         string
	UpdatedAt     time.Time
}

type asyncUploadTask struct {
	id     string
	req    *UploadRequest
	ctx    context.Context
	cancel context.CancelFunc
}

type uploadFunc func(ctx context.Context, req *UploadRequest) (*FileInfo, error)

// asyncUploadManager drains a bounded queue with a fixed set of workers.
type asyncUploadManager struct {
	upload    uploadFunc
	workers   int
	queue     chan *asyncUploadTask
	tracker   *uploadStatusTracker
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

type uploadStatusTracker struct {
	mu       sync.RWMutex
	statuses map[string]*UploadProgress
	results  map[string]*AsyncUploadResult
	cancels  map[string]context.CancelFunc
}

// progressReader reports the running byte count after every Read.
type progressReader struct {
	r          io.Reader
	read       int64
	onProgress func(read int64)
}

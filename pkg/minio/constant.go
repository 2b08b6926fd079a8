package minio

import "time"

// Transport tuning. Speech clips and recorded screen videos are streamed
// unmodified so compression stays off.
const (
	transportMaxIdleConns        = 64
	transportMaxIdleConnsPerHost = 32
	transportIdleConnTimeout     = 90 * time.Second
	transportDisableCompression  = true
)

const (
	DefaultAsyncWorkers   = 2
	DefaultAsyncQueueSize = 64
	// MaxFileSizeBytes bounds a single object (1GB). Recorded videos are the largest.
	MaxFileSizeBytes = 1 << 30
	// MaxPresignedExpiry is the S3 limit for a presigned URL.
	MaxPresignedExpiry  = 7 * 24 * time.Hour
	DefaultEndpointPort = ":9000"

	asyncCleanupInterval = 5 * time.Minute
	asyncCleanupMaxAge   = time.Hour
	asyncWaitPoll        = 100 * time.Millisecond
)

const (
	DispositionAuto       = "auto"
	DispositionInline     = "inline"
	DispositionAttachment = "attachment"
)

const (
	MethodGET = "GET"
	MethodPUT = "PUT"
)

const (
	cacheControlInline     = "public, max-age=3600"
	cacheControlAttachment = "private, no-cache"
)

// inlineContentTypes are served with an inline disposition under DispositionAuto.
var inlineContentTypes = []string{"audio/", "video/", "image/", "text/markdown", "text/plain", "application/json"}

package minio

import (
	"errors"
	"fmt"
)

// Storage error codes.
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeQueueFull      = "QUEUE_FULL"
	ErrCodeTaskNotFound   = "TASK_NOT_FOUND"
	ErrCodeInvalidState   = "INVALID_STATE"
	ErrCodeUploadTimedOut = "UPLOAD_TIMEOUT"
)

// StorageError is returned by every MinIO operation.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	msg := e.Message
	if e.Operation != "" {
		msg = fmt.Sprintf("%s: %s", e.Operation, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("minio: %s: %v", msg, e.Cause)
	}
	return "minio: " + msg
}

func (e *StorageError) Unwrap() error { return e.Cause }

// IsNotFound reports whether err is a missing bucket or object.
func IsNotFound(err error) bool {
	var se *StorageError
	return errors.As(err, &se) && se.Code == ErrCodeNotFound
}

func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

func NewBucketNotFoundError(bucket string) *StorageError {
	return &StorageError{Code: ErrCodeNotFound, Message: fmt.Sprintf("bucket not found: %s", bucket)}
}

func NewObjectNotFoundError(object string) *StorageError {
	return &StorageError{Code: ErrCodeNotFound, Message: fmt.Sprintf("object not found: %s", object)}
}

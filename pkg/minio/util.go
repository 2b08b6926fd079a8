package minio

import (
	"slices"
	"strings"

	"spyglass-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
	switch {
	case cfg == nil:
		return NewInvalidInputError("config is required")
	case cfg.Endpoint == "":
		return NewInvalidInputError("endpoint is required")
	case cfg.AccessKey == "" || cfg.SecretKey == "":
		return NewInvalidInputError("access key and secret key are required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint += DefaultEndpointPort
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateObjectKey(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	switch {
	case req.Reader == nil:
		return NewInvalidInputError("reader is required")
	case req.Size <= 0:
		return NewInvalidInputError("size must be positive")
	case req.Size > MaxFileSizeBytes:
		return NewInvalidInputError("file size cannot exceed 1GB")
	case req.ContentType == "":
		return NewInvalidInputError("content type is required")
	}
	return nil
}

func validateDownloadRequest(req *DownloadRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateObjectKey(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	switch req.Disposition {
	case "", DispositionAuto, DispositionInline, DispositionAttachment:
		return nil
	}
	return NewInvalidInputError("disposition must be 'auto', 'inline', or 'attachment'")
}

func validatePresignedURLRequest(req *PresignedURLRequest) error {
	if err := validateObjectKey(req.BucketName, req.ObjectName); err != nil {
		return err
	}
	switch {
	case req.Method != MethodGET && req.Method != MethodPUT:
		return NewInvalidInputError("method must be 'GET' or 'PUT'")
	case req.Expiry <= 0:
		return NewInvalidInputError("expiry must be positive")
	case req.Expiry > MaxPresignedExpiry:
		return NewInvalidInputError("expiry cannot exceed 7 days")
	}
	return nil
}

func validateObjectKey(bucketName, objectName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	return validateObjectName(objectName)
}

// validateBucketName applies the S3 naming rules: 3 to 63 lowercase letters,
// digits, hyphens and dots, starting and ending with a letter or digit.
func validateBucketName(name string) error {
	if name == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(name) < 3 || len(name) > 63 {
		return NewInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, hyphens and dots")
		}
	}
	if !isAlnum(name[0]) || !isAlnum(name[len(name)-1]) {
		return NewInvalidInputError("bucket name must start and end with a letter or number")
	}
	if strings.Contains(name, "..") {
		return NewInvalidInputError("bucket name cannot contain consecutive dots")
	}
	return nil
}

// validateObjectName rejects keys that could escape an owner prefix.
func validateObjectName(name string) error {
	if name == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.Contains(name, "\\") {
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	if slices.Contains(strings.Split(name, "/"), "..") {
		return NewInvalidInputError("object name cannot contain '..' segments")
	}
	return nil
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

package repository

import "errors"

var (
	ErrRecordNotFound   = errors.New("repository: history record not found")
	ErrRecordLoadFailed = errors.New("repository: failed to load history record")
	ErrRecordSaveFailed = errors.New("repository: failed to save history record")
)

package repository

import "errors"

var (
	ErrJobNotFound   = errors.New("video job not found")
	ErrJobLoadFailed = errors.New("failed to load video job")
	ErrJobSaveFailed = errors.New("failed to save video job")
)

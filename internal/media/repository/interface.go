package repository

import (
	"context"

	"spyglass-srv/internal/model"
)

//go:generate mockery --name VideoJobRepository
type VideoJobRepository interface {
	Save(ctx context.Context, job model.VideoJob) error
	// Get returns ErrJobNotFound for unknown or expired jobs.
	Get(ctx context.Context, id string) (model.VideoJob, error)
}

package usecase

import (
	"sync"

	"spyglass-srv/internal/history"
	"spyglass-srv/internal/history/repository"
	"spyglass-srv/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	// mu serializes read-modify-write cycles on the per-owner record.
	mu sync.Mutex
}

// New creates a new history UseCase implementation.
func New(repo repository.Repository, l log.Logger) history.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

package usecase

import (
	"time"

	"spyglass-srv/internal/media"
	"spyglass-srv/internal/media/repository"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/minio"

	"github.com/google/uuid"
)

type implUseCase struct {
	l        log.Logger
	gemini   gemini.IGemini
	storage  minio.MinIO
	repo     repository.VideoJobRepository
	producer media.Producer
	cfg      media.Config
	now      func() time.Time
	newID    func() string
}

// New creates the media usecase. producer is nil in the worker, which only
// processes jobs.
func New(
	l log.Logger,
	gemini gemini.IGemini,
	storage minio.MinIO,
	repo repository.VideoJobRepository,
	producer media.Producer,
	cfg media.Config,
) media.UseCase {
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = media.DefaultPresignExpiry
	}
	if cfg.VideoPollInterval <= 0 {
		cfg.VideoPollInterval = media.DefaultVideoPollInterval
	}
	return &implUseCase{
		l:        l,
		gemini:   gemini,
		storage:  storage,
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

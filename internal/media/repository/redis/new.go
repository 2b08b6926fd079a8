package redis

import (
	"time"

	"spyglass-srv/internal/media/repository"
	"spyglass-srv/pkg/log"
	pkgRedis "spyglass-srv/pkg/redis"
)

const (
	keyPrefix = "spyglass-video-job"
	jobTTL    = 24 * time.Hour
)

type implRepository struct {
	rdb pkgRedis.IRedis
	l   log.Logger
}

// New returns a VideoJobRepository storing jobs as JSON for a day.
func New(rdb pkgRedis.IRedis, l log.Logger) repository.VideoJobRepository {
	return &implRepository{
		rdb: rdb,
		l:   l,
	}
}

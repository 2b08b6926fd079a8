package redis

import (
	"spyglass-srv/internal/history/repository"
	"spyglass-srv/pkg/log"
	pkgRedis "spyglass-srv/pkg/redis"
)

const defaultKeyPrefix = "spyglass-history"

type implRepository struct {
	rdb    pkgRedis.IRedis
	l      log.Logger
	prefix string
}

// New returns a Repository keeping each owner's record under
// "<prefix>:<owner>".
func New(rdb pkgRedis.IRedis, l log.Logger, prefix string) repository.Repository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &implRepository{
		rdb:    rdb,
		l:      l,
		prefix: prefix,
	}
}

package redis

import (
	"context"
	"errors"

	"spyglass-srv/internal/history/repository"
	pkgRedis "spyglass-srv/pkg/redis"
)

func (r *implRepository) key(owner string) string {
	return r.prefix + ":" + owner
}

func (r *implRepository) Load(ctx context.Context, owner string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.key(owner))
	if errors.Is(err, pkgRedis.ErrNil) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "history.repository.redis.Load: Failed to get %s: %v", r.key(owner), err)
		return nil, repository.ErrRecordLoadFailed
	}
	return b, nil
}

func (r *implRepository) Save(ctx context.Context, owner string, payload []byte) error {
	if err := r.rdb.Set(ctx, r.key(owner), payload, 0); err != nil {
		r.l.Errorf(ctx, "history.repository.redis.Save: Failed to set %s: %v", r.key(owner), err)
		return repository.ErrRecordSaveFailed
	}
	return nil
}

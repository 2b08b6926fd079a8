package redis

import (
	"context"
	"encoding/json"
	"errors"

	"spyglass-srv/internal/media/repository"
	"spyglass-srv/internal/model"
	pkgRedis "spyglass-srv/pkg/redis"
)

func key(id string) string {
	return keyPrefix + ":" + id
}

func (r *implRepository) Save(ctx context.Context, job model.VideoJob) error {
	b, err := json.Marshal(job)
	if err != nil {
		r.l.Errorf(ctx, "media.repository.redis.Save: Failed to marshal job %s: %v", job.ID, err)
		return repository.ErrJobSaveFailed
	}
	if err := r.rdb.Set(ctx, key(job.ID), b, jobTTL); err != nil {
		r.l.Errorf(ctx, "media.repository.redis.Save: Failed to set %s: %v", key(job.ID), err)
		return repository.ErrJobSaveFailed
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.VideoJob, error) {
	b, err := r.rdb.Get(ctx, key(id))
	if errors.Is(err, pkgRedis.ErrNil) {
		return model.VideoJob{}, repository.ErrJobNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "media.repository.redis.Get: Failed to get %s: %v", key(id), err)
		return model.VideoJob{}, repository.ErrJobLoadFailed
	}

	var job model.VideoJob
	if err := json.Unmarshal(b, &job); err != nil {
		r.l.Errorf(ctx, "media.repository.redis.Get: Corrupt job %s: %v", id, err)
		return model.VideoJob{}, repository.ErrJobLoadFailed
	}
	return job, nil
}

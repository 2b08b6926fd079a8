package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"spyglass-srv/internal/history/repository"
)

const (
	selectRecordQuery = `SELECT payload FROM history_records WHERE owner = ?`

	upsertRecordQuery = `INSERT INTO history_records (owner, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(owner) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
)

func (r *implRepository) Load(ctx context.Context, owner string) ([]byte, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, selectRecordQuery, owner).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "history.repository.sqlite.Load: Failed to select record: %v", err)
		return nil, repository.ErrRecordLoadFailed
	}
	return []byte(payload), nil
}

func (r *implRepository) Save(ctx context.Context, owner string, payload []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertRecordQuery, owner, string(payload), r.now().UTC()); err != nil {
		r.l.Errorf(ctx, "history.repository.sqlite.Save: Failed to upsert record: %v", err)
		return repository.ErrRecordSaveFailed
	}
	return nil
}

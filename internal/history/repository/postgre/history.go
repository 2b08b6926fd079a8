package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spyglass-srv/internal/history/repository"
)

// Migrate creates the history_records table when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("history.repository.postgre.Migrate: %w", err)
	}
	return nil
}

func (r *implRepository) Load(ctx context.Context, owner string) ([]byte, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, selectRecordQuery, owner).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.Load: Failed to select record: %v", err)
		return nil, repository.ErrRecordLoadFailed
	}
	return payload, nil
}

func (r *implRepository) Save(ctx context.Context, owner string, payload []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertRecordQuery, owner, payload, r.now().UTC()); err != nil {
		r.l.Errorf(ctx, "history.repository.postgre.Save: Failed to upsert record: %v", err)
		return repository.ErrRecordSaveFailed
	}
	return nil
}

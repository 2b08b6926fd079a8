package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"spyglass-srv/internal/history/repository"
	"spyglass-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db, log.NewNop()).(*implRepository)
	repo.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return repo, mock
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRecordQuery)).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[{"id":"1"}]`)))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRecordQuery)).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}))

		_, err := repo.Load(ctx, "alice")
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectRecordQuery)).
			WithArgs("alice").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Load(ctx, "alice")
		assert.ErrorIs(t, err, repository.ErrRecordLoadFailed)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertRecordQuery)).
			WithArgs("alice", []byte(`[]`), time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Save(ctx, "alice", []byte(`[]`)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertRecordQuery)).
			WillReturnError(errors.New("disk full"))

		assert.ErrorIs(t, repo.Save(ctx, "alice", []byte(`[]`)), repository.ErrRecordSaveFailed)
	})
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

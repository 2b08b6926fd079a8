package postgre

import (
	"database/sql"
	"time"

	"spyglass-srv/internal/history/repository"
	"spyglass-srv/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

func New(db *sql.DB, l log.Logger) repository.Repository {
	return &implRepository{
		db:  db,
		l:   l,
		now: time.Now,
	}
}

package history

import (
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/paginator"
)

const (
	// DefaultKeyPrefix namespaces the per-owner history record.
	DefaultKeyPrefix = "spyglass-history"
)

type ListInput struct {
	Paginate paginator.PaginateQuery
}

type ListOutput struct {
	Items     []model.HistoryItem
	Paginator paginator.Paginator
}

type GetInput struct {
	ID string
}

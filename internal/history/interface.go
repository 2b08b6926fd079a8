package history

import (
	"context"

	"spyglass-srv/internal/model"
)

// UseCase is the History Store. Persistence failures never surface: Load
// falls back to an empty list and writes are best-effort.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Load(ctx context.Context, owner string) []model.HistoryItem
	// Append places item at index 0 and returns the new list.
	Append(ctx context.Context, owner string, item model.HistoryItem) []model.HistoryItem
	// Clear empties the history. Callers confirm with the user first.
	Clear(ctx context.Context, owner string) []model.HistoryItem
	Get(ctx context.Context, owner, id string) (model.HistoryItem, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}

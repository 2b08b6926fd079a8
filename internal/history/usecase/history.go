package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"spyglass-srv/internal/history"
	"spyglass-srv/internal/history/repository"
	"spyglass-srv/internal/model"
)

// Load returns the owner's history, most recent first. A missing or corrupt
// record yields an empty list.
func (uc *implUseCase) Load(ctx context.Context, owner string) []model.HistoryItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items, _ := uc.load(ctx, owner)
	return items
}

// Append places item first. When the stored record cannot be read the
// write is skipped so an unreachable backend never loses older items.

func (uc *implUseCase) Append(ctx context.Context, owner string, item model.HistoryItem) []model.HistoryItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, ok := uc.load(ctx, owner)
	items := make([]model.HistoryItem, 0, len(current)+1)
	items = append(items, item)
	items = append(items, current...)

	if !ok {
		uc.l.Warnf(ctx, "history.usecase.Append: History for %s unavailable, item %s not persisted", owner, item.ID)
		return items
	}
	uc.save(ctx, owner, items)
	return items
}

func (uc *implUseCase) Clear(ctx context.Context, owner string) []model.HistoryItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := []model.HistoryItem{}
	uc.save(ctx, owner, items)
	return items
}

func (uc *implUseCase) Get(ctx context.Context, owner, id string) (model.HistoryItem, error) {
	if owner == "" {
		return model.HistoryItem{}, history.ErrOwnerRequired
	}
	for _, item := range uc.Load(ctx, owner) {
		if item.ID == id {
			return item, nil
		}
	}
	return model.HistoryItem{}, history.ErrHistoryNotFound
}

// load reports ok=false only when the backend failed. A missing or corrupt
// record is an empty history that may be overwritten.
func (uc *implUseCase) load(ctx context.Context, owner string) ([]model.HistoryItem, bool) {
	b, err := uc.repo.Load(ctx, owner)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return []model.HistoryItem{}, true
		}
		uc.l.Warnf(ctx, "history.usecase.load: Failed to load history for %s: %v", owner, err)
		return []model.HistoryItem{}, false
	}

	var items []model.HistoryItem
	if err := json.Unmarshal(b, &items); err != nil {
		uc.l.Warnf(ctx, "history.usecase.load: Corrupt history record for %s, starting empty: %v", owner, err)
		return []model.HistoryItem{}, true
	}
	if items == nil {
		items = []model.HistoryItem{}
	}
	return items, true
}

func (uc *implUseCase) save(ctx context.Context, owner string, items []model.HistoryItem) {
	b, err := json.Marshal(items)
	if err != nil {
		uc.l.Errorf(ctx, "history.usecase.save: Failed to marshal history: %v", err)
		return
	}
	if err := uc.repo.Save(ctx, owner, b); err != nil {
		uc.l.Warnf(ctx, "history.usecase.save: Failed to persist history for %s: %v", owner, err)
	}
}

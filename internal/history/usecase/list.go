package usecase

import (
	"context"

	"spyglass-srv/internal/history"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/paginator"
)

// List pages through the caller's history without changing its order.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input history.ListInput) (history.ListOutput, error) {
	if sc.UserID == "" {
		return history.ListOutput{}, history.ErrOwnerRequired
	}

	page, p := paginator.Page(uc.Load(ctx, sc.UserID), input.Paginate)
	return history.ListOutput{Items: page, Paginator: p}, nil
}

package usecase

import (
	"context"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
)

// Present loads a past report into the workspace and presents it again.
func (uc *implUseCase) Present(ctx context.Context, sc model.Scope, input analysis.PresentInput) (analysis.WorkspaceOutput, error) {
	if sc.UserID == "" {
		return analysis.WorkspaceOutput{}, analysis.ErrOwnerRequired
	}

	item, err := uc.historyUC.Get(ctx, sc.UserID, input.HistoryID)
	if err != nil {
		return analysis.WorkspaceOutput{}, err
	}

	ws := uc.workspace(sc.UserID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.showLocked(ctx, &item)
	return ws.outputLocked(), nil
}

// NewInvestigation clears the displayed report. The item that was on screen
// stays highlighted in the history for a short while.
func (uc *implUseCase) NewInvestigation(ctx context.Context, sc model.Scope) (analysis.WorkspaceOutput, error) {
	if sc.UserID == "" {
		return analysis.WorkspaceOutput{}, analysis.ErrOwnerRequired
	}

	ws := uc.workspace(sc.UserID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	previous := ws.current
	ws.current = nil
	ws.scheduler.Reset(ctx)
	if previous != nil {
		ws.setHighlightLocked(previous.ID, uc.highlightFor)
	}
	return ws.outputLocked(), nil
}

func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope, input analysis.ClearHistoryInput) error {
	if sc.UserID == "" {
		return analysis.ErrOwnerRequired
	}
	if !input.Confirmed {
		return analysis.ErrClearNotConfirmed
	}

	uc.historyUC.Clear(ctx, sc.UserID)

	ws := uc.workspace(sc.UserID)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.current = nil
	ws.clearHighlightLocked()
	ws.scheduler.Reset(ctx)
	return nil
}

func (uc *implUseCase) Workspace(ctx context.Context, sc model.Scope) (analysis.WorkspaceOutput, error) {
	if sc.UserID == "" {
		return analysis.WorkspaceOutput{}, analysis.ErrOwnerRequired
	}
	return uc.workspace(sc.UserID).output(), nil
}

// Subscribe streams the workspace's presentation events. The workspace is
// not evicted while the stream is open.
func (uc *implUseCase) Subscribe(ctx context.Context, sc model.Scope) (<-chan presentation.Event, func(), error) {
	if sc.UserID == "" {
		return nil, nil, analysis.ErrOwnerRequired
	}

	ws := uc.workspace(sc.UserID)
	ws.mu.Lock()
	ws.subscribers++
	ws.mu.Unlock()

	events, cancel := ws.scheduler.Subscribe()
	var done bool
	return events, func() {
		ws.mu.Lock()
		if !done {
			done = true
			ws.subscribers--
			ws.lastUsed = uc.now()
		}
		ws.mu.Unlock()
		cancel()
	}, nil
}

func (uc *implUseCase) SetMute(ctx context.Context, sc model.Scope, input analysis.SetMuteInput) (analysis.WorkspaceOutput, error) {
	if sc.UserID == "" {
		return analysis.WorkspaceOutput{}, analysis.ErrOwnerRequired
	}

	ws := uc.workspace(sc.UserID)
	if err := ws.scheduler.SetMuted(ctx, input.Muted, input.Confirmed); err != nil {
		return analysis.WorkspaceOutput{}, err
	}
	return ws.output(), nil
}

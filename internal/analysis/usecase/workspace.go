package usecase

import (
	"context"
	"sync"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
)

type workspace struct {
	owner     string
	scheduler presentation.Scheduler

	mu             sync.Mutex
	loading        bool
	current        *model.HistoryItem
	highlight      string
	highlightSeq   uint64
	highlightTimer *time.Timer
	subscribers    int
	lastUsed       time.Time
}

// workspace returns the owner's workspace, creating it on first use.
func (uc *implUseCase) workspace(owner string) *workspace {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ws, ok := uc.workspaces[owner]
	if !ok {
		ws = &workspace{owner: owner, scheduler: uc.newScheduler(owner)}
		uc.workspaces[owner] = ws
	}

	ws.mu.Lock()
	ws.lastUsed = uc.now()
	ws.mu.Unlock()
	return ws
}

// beginLoading sets the loading flag. It reports false when an analysis is
// already running.
func (ws *workspace) beginLoading() bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.loading {
		return false
	}
	ws.loading = true
	return true
}

func (ws *workspace) endLoading() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.loading = false
}

func (ws *workspace) setHighlightLocked(id string, d time.Duration) {
	ws.stopHighlightLocked()
	ws.highlight = id
	ws.highlightSeq++
	seq := ws.highlightSeq
	ws.scheduler.Publish(presentation.Event{Type: presentation.EventHighlight, HistoryID: id})

	ws.highlightTimer = time.AfterFunc(d, func() {
		ws.mu.Lock()
		defer ws.mu.Unlock()
		if ws.highlightSeq != seq {
			return
		}
		ws.highlight = ""
		ws.highlightTimer = nil
		ws.scheduler.Publish(presentation.Event{Type: presentation.EventHighlight})
	})
}

// showLocked puts item on screen and presents it from the first section. A
// pending highlight belongs to the report being replaced and is dropped.
func (ws *workspace) showLocked(ctx context.Context, item *model.HistoryItem) uint64 {
	ws.clearHighlightLocked()
	ws.current = item
	return ws.scheduler.Start(ctx, item.Report)
}

// clearHighlightLocked drops the highlight and tells subscribers if one was on.
func (ws *workspace) clearHighlightLocked() {
	active := ws.highlight != ""
	ws.stopHighlightLocked()
	if active {
		ws.scheduler.Publish(presentation.Event{Type: presentation.EventHighlight})
	}
}

func (ws *workspace) stopHighlightLocked() {
	if ws.highlightTimer != nil {
		ws.highlightTimer.Stop()
		ws.highlightTimer = nil
	}
	ws.highlight = ""
	ws.highlightSeq++
}

func (ws *workspace) outputLocked() analysis.WorkspaceOutput {
	o := analysis.WorkspaceOutput{
		Owner:        ws.owner,
		Loading:      ws.loading,
		Highlight:    ws.highlight,
		Presentation: ws.scheduler.Snapshot(),
	}
	if ws.current != nil {
		item := *ws.current
		o.Current = &item
	}
	return o
}

func (ws *workspace) output() analysis.WorkspaceOutput {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.outputLocked()
}

func (ws *workspace) close() {
	ws.mu.Lock()
	ws.stopHighlightLocked()
	ws.mu.Unlock()
	ws.scheduler.Close()
}

func (uc *implUseCase) janitor() {
	ticker := time.NewTicker(uc.idleTimeout / 4)
	defer ticker.Stop()

	for {
		select {
		case <-uc.done:
			return
		case <-ticker.C:
			uc.evictIdle(uc.now())
		}
	}
}

// evictIdle drops workspaces unused for idleTimeout. Workspaces with a
// running analysis or a live subscriber are kept.
func (uc *implUseCase) evictIdle(now time.Time) int {
	uc.mu.Lock()
	var idle []*workspace
	for owner, ws := range uc.workspaces {
		ws.mu.Lock()
		expired := !ws.loading && ws.subscribers == 0 && now.Sub(ws.lastUsed) > uc.idleTimeout
		ws.mu.Unlock()
		if expired {
			delete(uc.workspaces, owner)
			idle = append(idle, ws)
		}
	}
	uc.mu.Unlock()

	for _, ws := range idle {
		ws.close()
	}
	return len(idle)
}

func (uc *implUseCase) Close() {
	uc.closeOnce.Do(func() {
		close(uc.done)

		uc.mu.Lock()
		all := make([]*workspace, 0, len(uc.workspaces))
		for owner, ws := range uc.workspaces {
			delete(uc.workspaces, owner)
			all = append(all, ws)
		}
		uc.mu.Unlock()

		for _, ws := range all {
			ws.close()
		}
	})
}

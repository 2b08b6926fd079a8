package analysis

import (
	"time"

	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
)

const (
	MaxCompetitors     = 3
	MinCompetitorRunes = 3
	HighlightDuration  = 2500 * time.Millisecond
	DefaultIdleTimeout = time.Hour
)

// SchedulerFactory builds the presentation scheduler of a new workspace.
type SchedulerFactory func(owner string) presentation.Scheduler

type AnalyzeInput struct {
	Competitors []string
	Mode        string
}

type AnalyzeOutput struct {
	Item       model.HistoryItem
	Mode       string
	Generation uint64
	Sections   int
}

type PresentInput struct {
	HistoryID string
}

type ClearHistoryInput struct {
	Confirmed bool
}

type SetMuteInput struct {
	Muted     bool
	Confirmed bool
}

// WorkspaceOutput is a point-in-time view of an owner's workspace.
type WorkspaceOutput struct {
	Owner        string
	Loading      bool
	Current      *model.HistoryItem
	Highlight    string
	Presentation presentation.Snapshot
}

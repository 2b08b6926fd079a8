package analysis

import (
	"context"

	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
)

// UseCase is the Report Request Orchestrator. Each owner gets one workspace
// holding the displayed report, its presentation and the loading flag.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
	Present(ctx context.Context, sc model.Scope, input PresentInput) (WorkspaceOutput, error)
	NewInvestigation(ctx context.Context, sc model.Scope) (WorkspaceOutput, error)
	ClearHistory(ctx context.Context, sc model.Scope, input ClearHistoryInput) error
	Workspace(ctx context.Context, sc model.Scope) (WorkspaceOutput, error)
	Subscribe(ctx context.Context, sc model.Scope) (<-chan presentation.Event, func(), error)
	SetMute(ctx context.Context, sc model.Scope, input SetMuteInput) (WorkspaceOutput, error)
	Close()
}

// Producer publishes analysis events. Publishing is best-effort.
type Producer interface {
	PublishAnalysisCompleted(ctx context.Context, evt model.AnalysisCompleted) error
}

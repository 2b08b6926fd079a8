package usecase

import (
	"context"
	"strings"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/gemini"
)

// Analyze validates the competitors, generates the report and, on success,
// records it in history before presenting it. Nothing changes on failure.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if sc.UserID == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrOwnerRequired
	}

	names, err := validateCompetitors(input.Competitors)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}
	mode, err := normalizeMode(input.Mode)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	ws := uc.workspace(sc.UserID)
	if !ws.beginLoading() {
		return analysis.AnalyzeOutput{}, analysis.ErrAnalysisInProgress
	}
	defer ws.endLoading()

	var opts []gemini.GenerateOption
	if mode == model.ModeDeep {
		opts = append(opts, gemini.WithGoogleSearch())
	}

	report, err := uc.gemini.Generate(ctx, buildPrompt(mode, names), opts...)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Generate failed: %v", err)
		return analysis.AnalyzeOutput{}, analysis.ErrReportGenerationFailed
	}
	report = strings.TrimSpace(report)
	if report == "" {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: empty report for %v", names)
		return analysis.AnalyzeOutput{}, analysis.ErrReportGenerationFailed
	}

	item := model.NewHistoryItem(uc.newID(), names, report, uc.now())
	uc.historyUC.Append(ctx, sc.UserID, item)

	ws.mu.Lock()
	gen := ws.showLocked(ctx, &item)
	total := ws.scheduler.Snapshot().Total
	ws.mu.Unlock()

	uc.publishCompleted(ctx, sc.UserID, item, mode, total)

	return analysis.AnalyzeOutput{
		Item:       item,
		Mode:       mode,
		Generation: gen,
		Sections:   total,
	}, nil
}

func (uc *implUseCase) publishCompleted(ctx context.Context, owner string, item model.HistoryItem, mode string, sections int) {
	if uc.producer == nil {
		return
	}
	evt := model.AnalysisCompleted{
		ID:          item.ID,
		Owner:       owner,
		Competitors: item.Competitors,
		Mode:        mode,
		Sections:    sections,
		Date:        item.Date,
	}
	if err := uc.producer.PublishAnalysisCompleted(ctx, evt); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.publishCompleted: PublishAnalysisCompleted failed: %v", err)
	}
}

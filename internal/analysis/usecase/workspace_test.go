package usecase

import (
	"context"
	"testing"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/presentation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeOnce(t *testing.T, uc *implUseCase) analysis.AnalyzeOutput {
	t.Helper()
	o, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Acme", "Globex"}})
	require.NoError(t, err)
	return o
}

func TestPresent(t *testing.T) {
	t.Run("restarts a past report", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		first := analyzeOnce(t, uc)

		ws, err := uc.Present(context.Background(), alice, analysis.PresentInput{HistoryID: first.Item.ID})

		require.NoError(t, err)
		require.NotNil(t, ws.Current)
		assert.Equal(t, first.Item.ID, ws.Current.ID)
		assert.Greater(t, ws.Presentation.Generation, first.Generation)
		assert.Equal(t, presentation.StatePresenting, ws.Presentation.State)
		assert.Empty(t, ws.Presentation.Sections)
	})

	t.Run("unknown item", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.Present(context.Background(), alice, analysis.PresentInput{HistoryID: "missing"})

		assert.ErrorIs(t, err, history.ErrHistoryNotFound)
	})
}

func TestNewInvestigation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	uc.highlightFor = 20 * time.Millisecond
	o := analyzeOnce(t, uc)

	events, cancel, err := uc.Subscribe(context.Background(), alice)
	require.NoError(t, err)
	defer cancel()

	ws, err := uc.NewInvestigation(context.Background(), alice)

	require.NoError(t, err)
	assert.Nil(t, ws.Current)
	assert.Equal(t, o.Item.ID, ws.Highlight)
	assert.Equal(t, presentation.StateIdle, ws.Presentation.State)

	assert.Equal(t, presentation.EventReset, (<-events).Type)
	highlight := <-events
	assert.Equal(t, presentation.EventHighlight, highlight.Type)
	assert.Equal(t, o.Item.ID, highlight.HistoryID)

	cleared := <-events
	assert.Equal(t, presentation.EventHighlight, cleared.Type)
	assert.Empty(t, cleared.HistoryID)
	ws, _ = uc.Workspace(context.Background(), alice)
	assert.Empty(t, ws.Highlight)
}

func TestReplacingReportDropsHighlight(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		uc.highlightFor = time.Hour
		o := analyzeOnce(t, uc)
		_, err := uc.NewInvestigation(context.Background(), alice)
		require.NoError(t, err)

		events, cancel, err := uc.Subscribe(context.Background(), alice)
		require.NoError(t, err)
		defer cancel()

		ws, err := uc.Present(context.Background(), alice, analysis.PresentInput{HistoryID: o.Item.ID})

		require.NoError(t, err)
		require.NotNil(t, ws.Current)
		assert.Empty(t, ws.Highlight)

		cleared := <-events
		assert.Equal(t, presentation.EventHighlight, cleared.Type)
		assert.Empty(t, cleared.HistoryID)
		assert.Equal(t, presentation.EventStarted, (<-events).Type)
	})

	t.Run("analyze", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		uc.highlightFor = time.Hour
		analyzeOnce(t, uc)
		_, err := uc.NewInvestigation(context.Background(), alice)
		require.NoError(t, err)

		analyzeOnce(t, uc)

		ws, err := uc.Workspace(context.Background(), alice)
		require.NoError(t, err)
		assert.Empty(t, ws.Highlight)
		assert.NotNil(t, ws.Current)
	})
}

func TestNewInvestigationWithoutReport(t *testing.T) {
	uc, _ := newTestUseCase(t)

	ws, err := uc.NewInvestigation(context.Background(), alice)

	require.NoError(t, err)
	assert.Empty(t, ws.Highlight)
	assert.Equal(t, presentation.StateIdle, ws.Presentation.State)
}

func TestClearHistory(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		analyzeOnce(t, uc)

		err := uc.ClearHistory(context.Background(), alice, analysis.ClearHistoryInput{})

		assert.ErrorIs(t, err, analysis.ErrClearNotConfirmed)
		assert.Len(t, d.history.Load(context.Background(), alice.UserID), 1)
		ws, _ := uc.Workspace(context.Background(), alice)
		assert.NotNil(t, ws.Current)
	})

	t.Run("clears history and the displayed report", func(t *testing.T) {
		uc, d := newTestUseCase(t)
		analyzeOnce(t, uc)

		err := uc.ClearHistory(context.Background(), alice, analysis.ClearHistoryInput{Confirmed: true})

		require.NoError(t, err)
		assert.Empty(t, d.history.Load(context.Background(), alice.UserID))
		ws, _ := uc.Workspace(context.Background(), alice)
		assert.Nil(t, ws.Current)
		assert.Equal(t, presentation.StateIdle, ws.Presentation.State)
	})
}

func TestSetMute(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SetMute(context.Background(), alice, analysis.SetMuteInput{Muted: true})
	assert.ErrorIs(t, err, presentation.ErrMuteNotConfirmed)

	ws, err := uc.SetMute(context.Background(), alice, analysis.SetMuteInput{Muted: true, Confirmed: true})
	require.NoError(t, err)
	assert.True(t, ws.Presentation.Muted)

	ws, err = uc.SetMute(context.Background(), alice, analysis.SetMuteInput{Muted: false})
	require.NoError(t, err)
	assert.False(t, ws.Presentation.Muted)
}

func TestEvictIdle(t *testing.T) {
	uc, _ := newTestUseCase(t)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return start }

	analyzeOnce(t, uc)
	_, cancel, err := uc.Subscribe(context.Background(), alice)
	require.NoError(t, err)
	_, _ = uc.Workspace(context.Background(), bob)

	later := start.Add(uc.idleTimeout + time.Minute)
	assert.Equal(t, 1, uc.evictIdle(later))

	cancel()
	assert.Equal(t, 1, uc.evictIdle(later))
	assert.Empty(t, uc.workspaces)
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
	presUC "spyglass-srv/internal/presentation/usecase"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `# Dossiê

## Resumo Executivo
Acme lidera.

## Resumo Comparativo das Fontes de Tráfego
| Concorrente | Busca Orgânica (%) | Busca Paga (%) | Social (%) | Direto (%) | Referência (%) |
|---|---|---|---|---|---|
| Acme | 45 | 15 | 20 | 15 | 5 |
| Globex | 55 | 5 | 15 | 20 | 5 |`

type fakeGemini struct {
	gemini.IGemini

	mu      sync.Mutex
	report  string
	err     error
	prompts []string
	opts    []int
	started chan struct{}
	release chan struct{}
}

func (g *fakeGemini) Generate(ctx context.Context, prompt string, opts ...gemini.GenerateOption) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.opts = append(g.opts, len(opts))
	started, release := g.started, g.release
	g.mu.Unlock()

	if started != nil {
		close(started)
		<-release
	}
	return g.report, g.err
}

func (g *fakeGemini) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type fakeHistory struct {
	history.UseCase

	mu    sync.Mutex
	items map[string][]model.HistoryItem
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{items: map[string][]model.HistoryItem{}}
}

func (h *fakeHistory) Load(ctx context.Context, owner string) []model.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]model.HistoryItem(nil), h.items[owner]...)
}

func (h *fakeHistory) Append(ctx context.Context, owner string, item model.HistoryItem) []model.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items[owner] = append([]model.HistoryItem{item}, h.items[owner]...)
	return h.items[owner]
}

func (h *fakeHistory) Clear(ctx context.Context, owner string) []model.HistoryItem {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items[owner] = []model.HistoryItem{}
	return nil
}

func (h *fakeHistory) Get(ctx context.Context, owner, id string) (model.HistoryItem, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, it := range h.items[owner] {
		if it.ID == id {
			return it, nil
		}
	}
	return model.HistoryItem{}, history.ErrHistoryNotFound
}

type fakeProducer struct {
	mu     sync.Mutex
	events []model.AnalysisCompleted
	err    error
}

func (p *fakeProducer) PublishAnalysisCompleted(ctx context.Context, evt model.AnalysisCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

type deps struct {
	gemini   *fakeGemini
	history  *fakeHistory
	producer *fakeProducer
}

func newTestUseCase(t *testing.T) (*implUseCase, deps) {
	t.Helper()
	d := deps{
		gemini:   &fakeGemini{report: sampleReport},
		history:  newFakeHistory(),
		producer: &fakeProducer{},
	}
	factory := func(owner string) presentation.Scheduler {
		return presUC.New(log.NewNop(), presUC.NewHub(), nil, nil, presentation.Config{RevealInterval: time.Hour})
	}
	uc := New(log.NewNop(), d.history, d.gemini, d.producer, factory).(*implUseCase)
	uc.newID = func() string { return "item-1" }
	t.Cleanup(uc.Close)
	return uc, d
}

var (
	alice = model.Scope{UserID: "alice", Role: model.RoleGuest}
	bob   = model.Scope{UserID: "bob", Role: model.RoleGuest}
)

func TestAnalyze(t *testing.T) {
	tcs := map[string]struct {
		input       analysis.AnalyzeInput
		geminiErr   error
		report      string
		wantErr     error
		wantNames   []string
		wantCalls   int
		wantHistory int
	}{
		"filters empty slots": {
			input:       analysis.AnalyzeInput{Competitors: []string{"Acme", "", "Globex"}, Mode: model.ModeStandard},
			wantNames:   []string{"Acme", "Globex"},
			wantCalls:   1,
			wantHistory: 1,
		},
		"trims names": {
			input:       analysis.AnalyzeInput{Competitors: []string{"  Acme Corp. ", " "}},
			wantNames:   []string{"Acme Corp."},
			wantCalls:   1,
			wantHistory: 1,
		},
		"name too short": {
			input:   analysis.AnalyzeInput{Competitors: []string{"ab"}},
			wantErr: analysis.ErrCompetitorTooShort,
		},
		"invalid characters": {
			input:   analysis.AnalyzeInput{Competitors: []string{"Acme!"}},
			wantErr: analysis.ErrInvalidCompetitor,
		},
		"non ascii letters": {
			input:   analysis.AnalyzeInput{Competitors: []string{"Açaí"}},
			wantErr: analysis.ErrInvalidCompetitor,
		},
		"all empty": {
			input:   analysis.AnalyzeInput{Competitors: []string{"", "  ", ""}},
			wantErr: analysis.ErrNoCompetitors,
		},
		"too many slots": {
			input:   analysis.AnalyzeInput{Competitors: []string{"Acme", "Globex", "Initech", "Umbrella"}},
			wantErr: analysis.ErrTooManyCompetitors,
		},
		"invalid mode": {
			input:   analysis.AnalyzeInput{Competitors: []string{"Acme"}, Mode: "shallow"},
			wantErr: analysis.ErrInvalidMode,
		},
		"generation failure": {
			input:     analysis.AnalyzeInput{Competitors: []string{"Acme"}},
			geminiErr: errors.New("quota exceeded"),
			wantErr:   analysis.ErrReportGenerationFailed,
			wantCalls: 1,
		},
		"empty report": {
			input:     analysis.AnalyzeInput{Competitors: []string{"Acme"}},
			report:    "  \n",
			wantErr:   analysis.ErrReportGenerationFailed,
			wantCalls: 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc, d := newTestUseCase(t)
			d.gemini.err = tc.geminiErr
			if tc.report != "" {
				d.gemini.report = tc.report
			}

			o, err := uc.Analyze(context.Background(), alice, tc.input)

			assert.Equal(t, tc.wantCalls, d.gemini.calls())
			items := d.history.Load(context.Background(), alice.UserID)
			assert.Len(t, items, tc.wantHistory)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				ws, _ := uc.Workspace(context.Background(), alice)
				assert.Nil(t, ws.Current)
				assert.False(t, ws.Loading)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantNames, o.Item.Competitors)
			assert.Equal(t, tc.wantNames, items[0].Competitors)
			assert.Equal(t, sampleReport, items[0].Report)
			assert.Equal(t, 2, o.Sections)
		})
	}
}

func TestAnalyzeSuccessPresentsReport(t *testing.T) {
	uc, d := newTestUseCase(t)

	o, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Acme", "", "Globex"}})
	require.NoError(t, err)

	ws, err := uc.Workspace(context.Background(), alice)
	require.NoError(t, err)
	require.NotNil(t, ws.Current)
	assert.Equal(t, o.Item.ID, ws.Current.ID)
	assert.Equal(t, presentation.StatePresenting, ws.Presentation.State)
	assert.Equal(t, o.Generation, ws.Presentation.Generation)

	require.Len(t, d.producer.events, 1)
	assert.Equal(t, "alice", d.producer.events[0].Owner)
	assert.Equal(t, model.ModeStandard, d.producer.events[0].Mode)
	assert.Contains(t, d.gemini.prompts[0], "Acme, Globex")
	assert.Contains(t, d.gemini.prompts[0], "| Globex | [valor]")
}

func TestAnalyzeDeepMode(t *testing.T) {
	uc, d := newTestUseCase(t)

	o, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Acme"}, Mode: "deep"})

	require.NoError(t, err)
	assert.Equal(t, model.ModeDeep, o.Mode)
	assert.Equal(t, []int{1}, d.gemini.opts)
	assert.Contains(t, d.gemini.prompts[0], "investigação profunda")
}

func TestAnalyzeProducerFailureIsIgnored(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.producer.err = errors.New("broker down")

	_, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Acme"}})

	require.NoError(t, err)
	assert.Len(t, d.history.Load(context.Background(), alice.UserID), 1)
}

func TestAnalyzeInProgress(t *testing.T) {
	uc, d := newTestUseCase(t)
	d.gemini.started = make(chan struct{})
	d.gemini.release = make(chan struct{})

	errc := make(chan error, 1)
	go func() {
		_, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Acme"}})
		errc <- err
	}()
	<-d.gemini.started

	ws, _ := uc.Workspace(context.Background(), alice)
	assert.True(t, ws.Loading)

	_, err := uc.Analyze(context.Background(), alice, analysis.AnalyzeInput{Competitors: []string{"Globex"}})
	assert.ErrorIs(t, err, analysis.ErrAnalysisInProgress)

	d.gemini.mu.Lock()
	d.gemini.started = nil
	d.gemini.mu.Unlock()
	_, err = uc.Analyze(context.Background(), bob, analysis.AnalyzeInput{Competitors: []string{"Globex"}})
	assert.NoError(t, err)

	close(d.gemini.release)
	require.NoError(t, <-errc)
	assert.Equal(t, 2, d.gemini.calls())
}

func TestAnalyzeRequiresOwner(t *testing.T) {
	uc, d := newTestUseCase(t)

	_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{Competitors: []string{"Acme"}})

	assert.ErrorIs(t, err, analysis.ErrOwnerRequired)
	assert.Zero(t, d.gemini.calls())
}

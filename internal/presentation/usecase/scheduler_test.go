package usecase

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"spyglass-srv/internal/narration"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSections = `## Visão Geral
Acme e Globex disputam o mercado.

## Fontes de Tráfego
| Concorrente | Busca Orgânica (%) | Busca Paga (%) | Social (%) | Direto (%) | Referência (%) |
|---|---|---|---|---|---|
| Acme | 40 | 10 | 20 | 25 | 5 |

## Recomendações
Investir em SEO.`

type fakePlayer struct {
	mu     sync.Mutex
	spoken []string
	gens   []uint64
	stops  int
}

func (p *fakePlayer) Speak(ctx context.Context, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spoken = append(p.spoken, text)
	p.gens = append(p.gens, narration.GenerationFromContext(ctx))
}

func (p *fakePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
}

func (p *fakePlayer) texts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.spoken...)
}

func (p *fakePlayer) generations() []uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uint64(nil), p.gens...)
}

func newTestScheduler(t *testing.T, narrationEnabled bool) (*implScheduler, *fakePlayer) {
	t.Helper()
	player := &fakePlayer{}
	s := New(log.NewNop(), NewHub(), player, nil, presentation.Config{
		RevealInterval:   time.Hour,
		NarrationEnabled: narrationEnabled,
	}).(*implScheduler)
	t.Cleanup(s.Close)
	return s, player
}

func TestStart(t *testing.T) {
	t.Run("splits into sections", func(t *testing.T) {
		s, _ := newTestScheduler(t, true)

		gen := s.Start(context.Background(), threeSections)

		snap := s.Snapshot()
		assert.Equal(t, gen, snap.Generation)
		assert.Equal(t, presentation.StatePresenting, snap.State)
		assert.Equal(t, 3, snap.Total)
		assert.Empty(t, snap.Sections)
	})

	t.Run("no sections completes immediately", func(t *testing.T) {
		s, _ := newTestScheduler(t, true)

		s.Start(context.Background(), "texto sem títulos")

		snap := s.Snapshot()
		assert.Equal(t, presentation.StateComplete, snap.State)
		assert.Zero(t, snap.Total)
	})

	t.Run("stops narration of the previous report", func(t *testing.T) {
		s, player := newTestScheduler(t, true)

		s.Start(context.Background(), threeSections)
		s.Start(context.Background(), threeSections)

		assert.Equal(t, 2, player.stops)
	})
}

func TestTick(t *testing.T) {
	t.Run("reveals one section per tick until complete", func(t *testing.T) {
		s, player := newTestScheduler(t, true)
		gen := s.Start(context.Background(), threeSections)

		for i := 1; i <= 3; i++ {
			more := s.tick(gen)
			snap := s.Snapshot()
			require.Len(t, snap.Sections, i)
			assert.Equal(t, i-1, snap.Sections[i-1].Index)
			assert.Equal(t, i < 3, more)
		}

		snap := s.Snapshot()
		assert.Equal(t, presentation.StateComplete, snap.State)
		assert.Equal(t, []string{"Visão Geral", "Fontes de Tráfego", "Recomendações"},
			[]string{snap.Sections[0].Heading, snap.Sections[1].Heading, snap.Sections[2].Heading})
		assert.Len(t, player.texts(), 3)
		assert.False(t, s.tick(gen))
		assert.Len(t, s.Snapshot().Sections, 3)
	})

	t.Run("traffic follows revealed text", func(t *testing.T) {
		s, _ := newTestScheduler(t, false)
		gen := s.Start(context.Background(), threeSections)

		s.tick(gen)
		assert.Empty(t, s.Snapshot().Traffic)

		s.tick(gen)
		traffic := s.Snapshot().Traffic
		require.Len(t, traffic, 1)
		assert.Equal(t, "Acme", traffic[0].Competitor)
		assert.Equal(t, 40.0, traffic[0].OrganicSearch)
	})

	t.Run("stale generation is dropped", func(t *testing.T) {
		s, player := newTestScheduler(t, true)
		old := s.Start(context.Background(), threeSections)
		s.Start(context.Background(), "## Único\nconteúdo")

		assert.False(t, s.tick(old))
		assert.Empty(t, s.Snapshot().Sections)
		assert.Empty(t, player.texts())
	})

	t.Run("reset drops pending ticks", func(t *testing.T) {
		s, _ := newTestScheduler(t, true)
		gen := s.Start(context.Background(), threeSections)
		s.tick(gen)

		s.Reset(context.Background())

		assert.False(t, s.tick(gen))
		snap := s.Snapshot()
		assert.Equal(t, presentation.StateIdle, snap.State)
		assert.Empty(t, snap.Sections)
	})

	t.Run("narration disabled", func(t *testing.T) {
		s, player := newTestScheduler(t, false)
		gen := s.Start(context.Background(), threeSections)

		s.tick(gen)

		assert.Empty(t, player.texts())
	})
}

func TestSetMuted(t *testing.T) {
	tcs := map[string]struct {
		muted     bool
		confirmed bool
		wantErr   error
		wantMuted bool
		wantStops int
	}{
		"mute without confirmation": {
			muted:     true,
			wantErr:   presentation.ErrMuteNotConfirmed,
			wantMuted: false,
		},
		"mute confirmed": {
			muted:     true,
			confirmed: true,
			wantMuted: true,
			wantStops: 1,
		},
		"unmute": {
			muted:     false,
			wantMuted: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			s, player := newTestScheduler(t, true)

			err := s.SetMuted(context.Background(), tc.muted, tc.confirmed)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMuted, s.Snapshot().Muted)
			assert.Equal(t, tc.wantStops, player.stops)
		})
	}
}

func TestMuteMidPresentation(t *testing.T) {
	s, player := newTestScheduler(t, true)
	gen := s.Start(context.Background(), threeSections)

	s.tick(gen)
	require.NoError(t, s.SetMuted(context.Background(), true, true))
	s.tick(gen)
	s.tick(gen)

	assert.Equal(t, presentation.StateComplete, s.Snapshot().State)
	spoken := player.texts()
	require.Len(t, spoken, 1)
	assert.Contains(t, spoken[0], "Visão Geral")

	require.NoError(t, s.SetMuted(context.Background(), false, false))
	assert.Len(t, player.texts(), 1)
}

func TestNarrationCarriesGeneration(t *testing.T) {
	s, player := newTestScheduler(t, true)
	s.Start(context.Background(), threeSections)
	gen := s.Start(context.Background(), threeSections)

	s.tick(gen)
	s.tick(gen)
	s.tick(gen)

	assert.Equal(t, []uint64{gen, gen, gen}, player.generations())
}

func TestEventOutput(t *testing.T) {
	hub := NewHub()
	events, cancel := hub.Subscribe()
	defer cancel()
	out := NewEventOutput(hub)

	clip := narration.Clip{ID: "c1", Generation: 4, Text: "Resumo", WAV: []byte("RIFF")}
	require.NoError(t, out.Play(context.Background(), clip))
	out.Stop(narration.WithGeneration(context.Background(), 5))

	played := <-events
	assert.Equal(t, presentation.EventNarration, played.Type)
	assert.Equal(t, uint64(4), played.Generation)
	require.NotNil(t, played.Narration)
	assert.Equal(t, "c1", played.Narration.ClipID)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("RIFF")), played.Narration.WAVBase64)

	stopped := <-events
	assert.Equal(t, presentation.EventNarration, stopped.Type)
	assert.Equal(t, uint64(5), stopped.Generation)
	assert.Nil(t, stopped.Narration)
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestScheduler(t, false)
	events, cancel := s.Subscribe()
	defer cancel()

	gen := s.Start(context.Background(), threeSections)
	s.tick(gen)

	started := <-events
	assert.Equal(t, presentation.EventStarted, started.Type)
	assert.Equal(t, gen, started.Generation)

	section := <-events
	assert.Equal(t, presentation.EventSection, section.Type)
	require.NotNil(t, section.Section)
	assert.Equal(t, 1, section.Revealed)
	assert.Contains(t, section.Section.HTML, "<h2>")

	s.Publish(presentation.Event{Type: presentation.EventHighlight, Generation: gen + 1})
	s.Publish(presentation.Event{Type: presentation.EventHighlight, HistoryID: "h1"})
	highlight := <-events
	assert.Equal(t, "h1", highlight.HistoryID)
}

func TestHub(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelB()

	hub.Publish(presentation.Event{Type: presentation.EventReset})
	assert.Equal(t, presentation.EventReset, (<-a).Type)
	assert.Equal(t, presentation.EventReset, (<-b).Type)

	cancelA()
	cancelA()
	_, open := <-a
	assert.False(t, open)

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(presentation.Event{Type: presentation.EventMute})
	}
	assert.Len(t, b, subscriberBuffer)

	hub.Close()
	late, _ := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

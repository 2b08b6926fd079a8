package usecase

import (
	"context"
	"time"

	"spyglass-srv/internal/narration"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/markdown"
)

func (s *implScheduler) Start(ctx context.Context, report string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.switchLocked()
	s.sections = markdown.SplitSections(report)
	if len(s.sections) == 0 {
		s.state = presentation.StateComplete
	} else {
		s.state = presentation.StatePresenting
	}

	s.l.Debugf(ctx, "presentation.usecase.Start: generation %d with %d sections", gen, len(s.sections))
	s.publishLocked(presentation.Event{Type: presentation.EventStarted})

	if s.state == presentation.StatePresenting {
		runCtx, cancel := context.WithCancel(narration.WithGeneration(context.WithoutCancel(ctx), gen))
		s.runCtx, s.cancel = runCtx, cancel
		go s.run(runCtx, gen)
	} else {
		s.publishLocked(presentation.Event{Type: presentation.EventComplete})
	}
	return gen
}

func (s *implScheduler) Reset(ctx context.Context) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.switchLocked()
	s.state = presentation.StateIdle
	s.l.Debugf(ctx, "presentation.usecase.Reset: generation %d", gen)
	s.publishLocked(presentation.Event{Type: presentation.EventReset})
	return gen
}

// switchLocked invalidates everything tied to the current generation.
func (s *implScheduler) switchLocked() uint64 {
	s.gen++
	s.stopTickerLocked()
	if s.narrator != nil {
		s.narrator.Stop()
	}
	s.sections = nil
	s.revealed = nil
	s.traffic = nil
	return s.gen
}

func (s *implScheduler) stopTickerLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *implScheduler) run(ctx context.Context, gen uint64) {
	ticker := time.NewTicker(s.cfg.RevealInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick reveals the next section of generation gen. It reports whether more
// ticks are needed; stale generations reveal nothing.
func (s *implScheduler) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != presentation.StatePresenting {
		return false
	}

	sec := s.sections[len(s.revealed)]
	display := markdown.PrepareDisplay(sec.Content)
	html, err := s.renderer.HTML(display)
	if err != nil {
		s.l.Warnf(s.runCtx, "presentation.usecase.tick: render section %d failed: %v", sec.Index, err)
	}
	revealed := presentation.RevealedSection{
		Index:    sec.Index,
		Heading:  sec.Heading,
		Markdown: sec.Content,
		Display:  display,
		HTML:     html,
	}
	s.revealed = append(s.revealed, revealed)
	s.traffic = markdown.ExtractTraffic(markdown.JoinSections(s.sections[:len(s.revealed)]))

	if len(s.revealed) == len(s.sections) {
		s.state = presentation.StateComplete
		s.stopTickerLocked()
	}

	s.publishLocked(presentation.Event{Type: presentation.EventSection, Section: &revealed, Traffic: s.traffic})
	if s.state == presentation.StateComplete {
		s.publishLocked(presentation.Event{Type: presentation.EventComplete})
	}

	if !s.muted && s.cfg.NarrationEnabled && s.narrator != nil {
		s.narrator.Speak(s.runCtx, markdown.NarrationText(sec.Content, s.cfg.NarrationLimit))
	}

	return s.state == presentation.StatePresenting
}

func (s *implScheduler) SetMuted(ctx context.Context, muted, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if muted && !s.muted && !confirmed {
		return presentation.ErrMuteNotConfirmed
	}
	if muted && s.narrator != nil {
		s.narrator.Stop()
	}
	s.muted = muted
	s.l.Debugf(ctx, "presentation.usecase.SetMuted: muted=%v", muted)
	s.publishLocked(presentation.Event{Type: presentation.EventMute})
	return nil
}

func (s *implScheduler) Snapshot() presentation.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	sections := make([]presentation.RevealedSection, len(s.revealed))
	copy(sections, s.revealed)
	traffic := make([]markdown.TrafficRecord, len(s.traffic))
	copy(traffic, s.traffic)
	if s.traffic == nil {
		traffic = nil
	}

	return presentation.Snapshot{
		Generation: s.gen,
		State:      s.state,
		Total:      len(s.sections),
		Sections:   sections,
		Traffic:    traffic,
		Muted:      s.muted,
	}
}

func (s *implScheduler) Subscribe() (<-chan presentation.Event, func()) {
	return s.hub.Subscribe()
}

// Publish stamps evt with the current state. Events that carry a generation
// from a replaced report are dropped.
func (s *implScheduler) Publish(evt presentation.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if evt.Generation != 0 && evt.Generation != s.gen {
		return
	}
	s.publishLocked(evt)
}

func (s *implScheduler) publishLocked(evt presentation.Event) {
	evt.Generation = s.gen
	evt.State = s.state
	evt.Total = len(s.sections)
	evt.Revealed = len(s.revealed)
	evt.Muted = s.muted
	s.hub.Publish(evt)
}

func (s *implScheduler) Close() {
	s.mu.Lock()
	s.gen++
	s.stopTickerLocked()
	if s.narrator != nil {
		s.narrator.Stop()
	}
	s.mu.Unlock()
	s.hub.Close()
}

package usecase

import (
	"context"
	"sync"

	"spyglass-srv/internal/narration"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/log"
	"spyglass-srv/pkg/markdown"
)

type implScheduler struct {
	l        log.Logger
	hub      *Hub
	narrator narration.Player
	renderer *markdown.Renderer
	cfg      presentation.Config

	mu       sync.Mutex
	gen      uint64
	state    presentation.State
	sections []markdown.Section
	revealed []presentation.RevealedSection
	traffic  []markdown.TrafficRecord
	muted    bool
	runCtx   context.Context
	cancel   context.CancelFunc
}

// New creates a Scheduler that publishes to hub and narrates through
// narrator. The scheduler starts Idle and unmuted.
func New(l log.Logger, hub *Hub, narrator narration.Player, renderer *markdown.Renderer, cfg presentation.Config) presentation.Scheduler {
	if cfg.RevealInterval <= 0 {
		cfg.RevealInterval = presentation.DefaultRevealInterval
	}
	if cfg.NarrationLimit <= 0 {
		cfg.NarrationLimit = markdown.DefaultNarrationLimit
	}
	if renderer == nil {
		renderer = markdown.NewRenderer()
	}
	return &implScheduler{
		l:        l,
		hub:      hub,
		narrator: narrator,
		renderer: renderer,
		cfg:      cfg,
		state:    presentation.StateIdle,
	}
}

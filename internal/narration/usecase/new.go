package usecase

import (
	"context"
	"sync"
	"time"

	"spyglass-srv/internal/narration"
	"spyglass-srv/pkg/audio"
	"spyglass-srv/pkg/gemini"
	"spyglass-srv/pkg/log"
)

// Config holds the per-owner player settings.
type Config struct {
	Owner      string
	Voice      string
	SampleRate int
	Channels   int
}

type implPlayer struct {
	l        log.Logger
	synth    narration.Synthesizer
	output   narration.Output
	archiver narration.Archiver
	cfg      Config
	newID    func() string
	now      func() time.Time

	mu     sync.Mutex
	token  uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Player. archiver may be nil.
func New(l log.Logger, synth narration.Synthesizer, output narration.Output, archiver narration.Archiver, cfg Config) narration.Player {
	if cfg.Voice == "" {
		cfg.Voice = gemini.DefaultVoice
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = audio.DefaultSampleRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = audio.DefaultChannels
	}
	return &implPlayer{
		l:        l,
		synth:    synth,
		output:   output,
		archiver: archiver,
		cfg:      cfg,
		newID:    newClipID,
		now:      time.Now,
	}
}

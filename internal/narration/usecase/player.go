package usecase

import (
	"context"
	"strings"

	"spyglass-srv/internal/narration"
	"spyglass-srv/pkg/audio"

	"github.com/google/uuid"
)

func newClipID() string {
	return uuid.New().String()
}

// Speak invalidates the previous clip and synthesizes text in the background.
// The work outlives ctx's cancellation but keeps its values.
func (p *implPlayer) Speak(ctx context.Context, text string) {
	text = strings.TrimSpace(text)

	p.mu.Lock()
	tok := p.invalidateLocked(ctx)
	if text == "" {
		p.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		defer cancel()
		p.run(runCtx, tok, text)
	}()
}

func (p *implPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidateLocked(context.Background())
}

// invalidateLocked bumps the token, cancels in-flight synthesis and cuts the
// sounding clip. It returns the new token.
func (p *implPlayer) invalidateLocked(ctx context.Context) uint64 {
	p.token++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.output.Stop(ctx)
	return p.token
}

func (p *implPlayer) run(ctx context.Context, tok uint64, text string) {
	pcm, err := p.synth.GenerateSpeech(ctx, text, p.cfg.Voice)
	if err != nil {
		if ctx.Err() == nil {
			p.l.Warnf(ctx, "narration.usecase.run: GenerateSpeech failed: %v", err)
		}
		return
	}

	wav, buf, err := audio.PCMToWAV(pcm, p.cfg.SampleRate, p.cfg.Channels)
	if err != nil {
		p.l.Warnf(ctx, "narration.usecase.run: decode failed: %v", err)
		return
	}

	clip := narration.Clip{
		ID:         p.newID(),
		Owner:      p.cfg.Owner,
		Generation: narration.GenerationFromContext(ctx),
		Text:       text,
		Voice:      p.cfg.Voice,
		WAV:        wav,
		SampleRate: buf.SampleRate,
		Channels:   buf.Channels,
		Frames:     buf.Frames(),
		Duration:   buf.Duration(),
		CreatedAt:  p.now().UTC(),
	}

	p.mu.Lock()
	if tok != p.token {
		p.mu.Unlock()
		p.l.Debugf(ctx, "narration.usecase.run: dropping stale clip %s", clip.ID)
		return
	}
	err = p.output.Play(ctx, clip)
	p.mu.Unlock()

	if err != nil {
		p.l.Warnf(ctx, "narration.usecase.run: Play failed: %v", err)
		return
	}
	if p.archiver != nil {
		p.archiver.Archive(ctx, clip)
	}
}

// wait blocks until every started synthesis has finished.
func (p *implPlayer) wait() {
	p.wg.Wait()
}

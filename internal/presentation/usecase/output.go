package usecase

import (
	"context"
	"encoding/base64"

	"spyglass-srv/internal/narration"
	"spyglass-srv/internal/presentation"
)

type eventOutput struct {
	hub *Hub
}

// NewEventOutput returns a narration.Output that sends clips to the hub's
// subscribers as narration events. It goes straight to the hub since the
// scheduler calls the player while holding its own lock.
func NewEventOutput(hub *Hub) narration.Output {
	return &eventOutput{hub: hub}
}

func (o *eventOutput) Play(ctx context.Context, clip narration.Clip) error {
	o.hub.Publish(presentation.Event{
		Type:       presentation.EventNarration,
		Generation: clip.Generation,
		Narration: &presentation.Narration{
			ClipID:     clip.ID,
			Text:       clip.Text,
			Voice:      clip.Voice,
			WAVBase64:  base64.StdEncoding.EncodeToString(clip.WAV),
			DurationMs: clip.Duration.Milliseconds(),
		},
	})
	return nil
}

// Stop tells clients to cut the clip they are playing.
func (o *eventOutput) Stop(ctx context.Context) {
	o.hub.Publish(presentation.Event{
		Type:       presentation.EventNarration,
		Generation: narration.GenerationFromContext(ctx),
	})
}

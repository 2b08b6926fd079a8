package narration

import "context"

// Player speaks section text. At most one clip is in flight or sounding:
// Speak stops whatever came before it and Stop silences everything.
//
//go:generate mockery --name Player
type Player interface {
	// Speak returns immediately. Synthesis failures are logged and dropped.
	Speak(ctx context.Context, text string)
	Stop()
}

// Synthesizer turns text into raw 16-bit little-endian PCM.
type Synthesizer interface {
	GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error)
}

// Output is where decoded clips go: an event stream for the API, a
// directory for the CLI.
type Output interface {
	Play(ctx context.Context, clip Clip) error
	// Stop cuts the clip currently sounding, if any.
	Stop(ctx context.Context)
}

// Archiver keeps a copy of every clip. Failures are the archiver's concern.
type Archiver interface {
	Archive(ctx context.Context, clip Clip)
	// Flush waits for queued copies until ctx ends.
	Flush(ctx context.Context)
}

package narration

import "time"

// Clip is one synthesized narration, ready to play. Generation is the
// presentation generation that asked for it.
type Clip struct {
	ID         string
	Owner      string
	Generation uint64
	Text       string
	Voice      string
	WAV        []byte
	SampleRate int
	Channels   int
	Frames     int
	Duration   time.Duration
	CreatedAt  time.Time
}

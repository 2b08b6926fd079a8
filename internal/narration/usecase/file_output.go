package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"spyglass-srv/internal/narration"
)

type fileOutput struct {
	dir     string
	mu      sync.Mutex
	seq     int
	onWrite func(path string, clip narration.Clip)
}

// NewFileOutput writes every clip to dir as a numbered WAV file. onWrite, if
// set, is called after each file is written.
func NewFileOutput(dir string, onWrite func(path string, clip narration.Clip)) (narration.Output, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating narration directory: %w", err)
	}
	return &fileOutput{dir: dir, onWrite: onWrite}, nil
}

func (o *fileOutput) Play(ctx context.Context, clip narration.Clip) error {
	o.mu.Lock()
	o.seq++
	name := fmt.Sprintf("%03d-narration.wav", o.seq)
	o.mu.Unlock()

	path := filepath.Join(o.dir, name)
	if err := os.WriteFile(path, clip.WAV, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if o.onWrite != nil {
		o.onWrite(path, clip)
	}
	return nil
}

// Stop is a no-op: a written file has nothing left to cut.
func (o *fileOutput) Stop(ctx context.Context) {}

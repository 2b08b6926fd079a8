package presentation

import "context"

// Scheduler is the Progressive Reveal Scheduler of one workspace. Every
// operation bumps or checks a generation tag so nothing from a replaced
// report lands after the switch.
//
//go:generate mockery --name Scheduler
type Scheduler interface {
	// Start replaces the current report and begins revealing it. It returns
	// the new generation.
	Start(ctx context.Context, report string) uint64
	// Reset drops the current report and goes back to Idle.
	Reset(ctx context.Context) uint64
	// SetMuted turns narration off (requires confirmed) or back on. Turning
	// it on never narrates sections that were revealed while muted.
	SetMuted(ctx context.Context, muted, confirmed bool) error
	Snapshot() Snapshot
	// Subscribe streams events until cancel is called.
	Subscribe() (events <-chan Event, cancel func())
	// Publish sends an out-of-band event (highlight, narration) to subscribers.
	Publish(evt Event)
	Close()
}

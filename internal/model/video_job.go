package model

import "time"

// VideoJobStatus is the lifecycle state of a video generation job.
type VideoJobStatus string

const (
	VideoJobPending VideoJobStatus = "PENDING"
	VideoJobRunning VideoJobStatus = "RUNNING"
	VideoJobDone    VideoJobStatus = "DONE"
	VideoJobFailed  VideoJobStatus = "FAILED"
)

// VideoJob tracks one long-running video generation.
type VideoJob struct {
	ID        string         `json:"id"`
	Owner     string         `json:"owner"`
	Operation string         `json:"operation"`
	Status    VideoJobStatus `json:"status"`
	Object    string         `json:"object,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// IsTerminal reports whether the job will not change anymore.
func (j VideoJob) IsTerminal() bool {
	return j.Status == VideoJobDone || j.Status == VideoJobFailed
}

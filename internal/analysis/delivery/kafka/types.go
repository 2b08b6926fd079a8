package kafka

import "time"

// AnalysisCompletedMessage is the wire form of a completed analysis. The
// report itself is not published.
type AnalysisCompletedMessage struct {
	EventType   string    `json:"event_type"`
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Competitors []string  `json:"competitors"`
	Mode        string    `json:"mode"`
	Sections    int       `json:"sections"`
	CompletedAt time.Time `json:"completed_at"`
}

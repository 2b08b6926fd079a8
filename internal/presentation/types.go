package presentation

import (
	"time"

	"spyglass-srv/pkg/markdown"
)

type State string

const (
	StateIdle       State = "IDLE"
	StatePresenting State = "PRESENTING"
	StateComplete   State = "COMPLETE"
)

const (
	DefaultRevealInterval = 2 * time.Second
)

type EventType string

const (
	EventStarted   EventType = "started"
	EventSection   EventType = "section"
	EventComplete  EventType = "complete"
	EventReset     EventType = "reset"
	EventMute      EventType = "mute"
	EventNarration EventType = "narration"
	EventHighlight EventType = "highlight"
)

// RevealedSection is a section as shown to the client.
type RevealedSection struct {
	Index    int    `json:"index"`
	Heading  string `json:"heading"`
	Markdown string `json:"markdown"`
	Display  string `json:"display"`
	HTML     string `json:"html"`
}

// Narration is a clip sent to clients as base64 WAV.
type Narration struct {
	ClipID     string `json:"clip_id"`
	Text       string `json:"text"`
	Voice      string `json:"voice"`
	WAVBase64  string `json:"wav_base64"`
	DurationMs int64  `json:"duration_ms"`
}

// Event is one presentation update.
type Event struct {
	Type       EventType                `json:"type"`
	Generation uint64                   `json:"generation"`
	State      State                    `json:"state"`
	Total      int                      `json:"total"`
	Revealed   int                      `json:"revealed"`
	Section    *RevealedSection         `json:"section,omitempty"`
	Traffic    []markdown.TrafficRecord `json:"traffic,omitempty"`
	Muted      bool                     `json:"muted"`
	Narration  *Narration               `json:"narration,omitempty"`
	HistoryID  string                   `json:"history_id,omitempty"`
}

// Snapshot is the scheduler state at one instant.
type Snapshot struct {
	Generation uint64
	State      State
	Total      int
	Sections   []RevealedSection
	Traffic    []markdown.TrafficRecord
	Muted      bool
}

// Config holds scheduler settings.
type Config struct {
	RevealInterval   time.Duration
	NarrationLimit   int
	NarrationEnabled bool
}

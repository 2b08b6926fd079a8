package model

import "time"

// Analysis modes.
const (
	ModeStandard = "standard"
	ModeDeep     = "deep"
)

// AnalysisCompleted is published once per successful analysis.
type AnalysisCompleted struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Competitors []string  `json:"competitors"`
	Mode        string    `json:"mode"`
	Sections    int       `json:"sections"`
	Date        time.Time `json:"date"`
}

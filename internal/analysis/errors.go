package analysis

import "errors"

var (
	ErrOwnerRequired          = errors.New("analysis: owner is required")
	ErrNoCompetitors          = errors.New("analysis: no competitors")
	ErrTooManyCompetitors     = errors.New("analysis: too many competitors")
	ErrCompetitorTooShort     = errors.New("analysis: competitor name too short")
	ErrInvalidCompetitor      = errors.New("analysis: competitor name has invalid characters")
	ErrInvalidMode            = errors.New("analysis: invalid mode")
	ErrAnalysisInProgress     = errors.New("analysis: analysis already in progress")
	ErrReportGenerationFailed = errors.New("analysis: report generation failed")
	ErrClearNotConfirmed      = errors.New("analysis: clear history not confirmed")
)

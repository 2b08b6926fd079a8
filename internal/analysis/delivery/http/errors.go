package http

import (
	"errors"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/presentation"
	pkgErrors "spyglass-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "common.bad_request")
	errUnauthorized       = pkgErrors.NewHTTPError(401, "common.unauthorized")
	errNoCompetitors      = pkgErrors.NewHTTPError(400, "analysis.no_competitors")
	errTooManyCompetitors = pkgErrors.NewHTTPError(400, "analysis.too_many_competitors")
	errCompetitorTooShort = pkgErrors.NewHTTPError(400, "analysis.competitor_too_short")
	errInvalidCompetitor  = pkgErrors.NewHTTPError(400, "analysis.competitor_invalid_chars")
	errInvalidMode        = pkgErrors.NewHTTPError(400, "analysis.invalid_mode")
	errAnalysisInProgress = pkgErrors.NewHTTPError(409, "analysis.in_progress")
	errGenerationFailed   = pkgErrors.NewHTTPError(502, "analysis.generation_failed")
	errMuteNotConfirmed   = pkgErrors.NewHTTPError(400, "analysis.mute_not_confirmed")
	errHistoryNotFound    = pkgErrors.NewHTTPError(404, "history.not_found")
	errClearNotConfirmed  = pkgErrors.NewHTTPError(400, "history.clear_not_confirmed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrOwnerRequired):
		return errUnauthorized
	case errors.Is(err, analysis.ErrNoCompetitors):
		return errNoCompetitors
	case errors.Is(err, analysis.ErrTooManyCompetitors):
		return errTooManyCompetitors
	case errors.Is(err, analysis.ErrCompetitorTooShort):
		return errCompetitorTooShort
	case errors.Is(err, analysis.ErrInvalidCompetitor):
		return errInvalidCompetitor
	case errors.Is(err, analysis.ErrInvalidMode):
		return errInvalidMode
	case errors.Is(err, analysis.ErrAnalysisInProgress):
		return errAnalysisInProgress
	case errors.Is(err, analysis.ErrReportGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, analysis.ErrClearNotConfirmed):
		return errClearNotConfirmed
	case errors.Is(err, presentation.ErrMuteNotConfirmed):
		return errMuteNotConfirmed
	case errors.Is(err, history.ErrHistoryNotFound):
		return errHistoryNotFound
	default:
		panic(err)
	}
}

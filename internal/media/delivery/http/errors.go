package http

import (
	"errors"

	"spyglass-srv/internal/media"
	pkgErrors "spyglass-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(400, "common.bad_request")
	errImageRequired      = pkgErrors.NewHTTPError(400, "media.image_required")
	errAudioRequired      = pkgErrors.NewHTTPError(400, "media.audio_required")
	errTextRequired       = pkgErrors.NewHTTPError(400, "media.text_required")
	errInvalidVoice       = pkgErrors.NewHTTPError(400, "media.invalid_voice")
	errReportRequired     = pkgErrors.NewHTTPError(400, "media.report_required")
	errInvalidAspectRatio = pkgErrors.NewHTTPError(400, "media.invalid_aspect_ratio")
	errGenerationFailed   = pkgErrors.NewHTTPError(502, "media.generation_failed")
	errStorageFailed      = pkgErrors.NewHTTPError(500, "media.storage_failed")
	errVideoJobNotFound   = pkgErrors.NewHTTPError(404, "media.video_job_not_found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, media.ErrImageRequired):
		return errImageRequired
	case errors.Is(err, media.ErrAudioRequired):
		return errAudioRequired
	case errors.Is(err, media.ErrTextRequired):
		return errTextRequired
	case errors.Is(err, media.ErrInvalidVoice):
		return errInvalidVoice
	case errors.Is(err, media.ErrReportRequired):
		return errReportRequired
	case errors.Is(err, media.ErrInvalidAspectRatio):
		return errInvalidAspectRatio
	case errors.Is(err, media.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, media.ErrStorageFailed):
		return errStorageFailed
	case errors.Is(err, media.ErrVideoJobNotFound):
		return errVideoJobNotFound
	default:
		panic(err)
	}
}

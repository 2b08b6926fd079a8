package http

import (
	"errors"

	"spyglass-srv/internal/session"
	pkgErrors "spyglass-srv/pkg/errors"
)

var (
	errWrongBody       = pkgErrors.NewHTTPError(400, "common.bad_request")
	errUnauthorized    = pkgErrors.NewHTTPError(401, "common.unauthorized")
	errUsernameTooLong = pkgErrors.NewHTTPError(400, "session.username_too_long")
	errIssueFailed     = pkgErrors.NewHTTPError(500, "session.issue_failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrUsernameTooLong):
		return errUsernameTooLong
	case errors.Is(err, session.ErrIssueFailed):
		return errIssueFailed
	case errors.Is(err, session.ErrNoSession):
		return errUnauthorized
	default:
		panic(err)
	}
}

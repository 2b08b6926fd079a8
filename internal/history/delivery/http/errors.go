package http

import (
	"errors"

	"spyglass-srv/internal/history"
	pkgErrors "spyglass-srv/pkg/errors"
)

var (
	errWrongQuery      = pkgErrors.NewHTTPError(400, "common.bad_request")
	errHistoryNotFound = pkgErrors.NewHTTPError(404, "history.not_found")
	errUnauthorized    = pkgErrors.NewHTTPError(401, "common.unauthorized")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, history.ErrHistoryNotFound):
		return errHistoryNotFound
	case errors.Is(err, history.ErrOwnerRequired):
		return errUnauthorized
	default:
		panic(err)
	}
}

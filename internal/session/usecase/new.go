package usecase

import (
	"spyglass-srv/internal/session"
	"spyglass-srv/pkg/log"

	"github.com/google/uuid"
)

type implUseCase struct {
	l      log.Logger
	tokens session.TokenIssuer
	newID  func() string
}

// New returns a session UseCase. Token lifetime is the issuer's concern.
func New(l log.Logger, tokens session.TokenIssuer) session.UseCase {
	return &implUseCase{
		l:      l,
		tokens: tokens,
		newID:  func() string { return uuid.New().String() },
	}
}

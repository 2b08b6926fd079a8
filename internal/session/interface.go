package session

import (
	"context"

	"spyglass-srv/internal/model"
	"spyglass-srv/pkg/jwt"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create issues an anonymous session. Every session owns its own
	// workspace and history.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Me(ctx context.Context, sc model.Scope) (model.Scope, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	IssueToken(userID, username, role string) (jwt.Token, error)
}

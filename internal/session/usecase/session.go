package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"spyglass-srv/internal/model"
	"spyglass-srv/internal/session"
)

func (uc *implUseCase) Create(ctx context.Context, input session.CreateInput) (session.CreateOutput, error) {
	username := strings.TrimSpace(input.Username)
	if utf8.RuneCountInString(username) > session.MaxUsernameRunes {
		return session.CreateOutput{}, session.ErrUsernameTooLong
	}

	userID := uc.newID()
	token, err := uc.tokens.IssueToken(userID, username, model.RoleGuest)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Create: IssueToken failed: %v", err)
		return session.CreateOutput{}, session.ErrIssueFailed
	}

	uc.l.Infof(ctx, "session.usecase.Create: issued session %s", userID)
	return session.CreateOutput{
		Token:     token.Value,
		UserID:    userID,
		Username:  username,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.Scope, error) {
	if sc.UserID == "" {
		return model.Scope{}, session.ErrNoSession
	}
	return sc, nil
}

package session

import "time"

const MaxUsernameRunes = 64

type CreateInput struct {
	Username string
}

type CreateOutput struct {
	Token     string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

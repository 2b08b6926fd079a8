package session

import "errors"

var (
	ErrUsernameTooLong = errors.New("session: username too long")
	ErrIssueFailed     = errors.New("session: failed to issue token")
	ErrNoSession       = errors.New("session: no session")
)

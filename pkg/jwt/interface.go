package jwt

import (
	"time"

	"spyglass-srv/pkg/scope"
)

// IManager signs and verifies HS256 session tokens. Safe for concurrent use.
type IManager interface {
	scope.Manager
	IssueToken(userID, username, role string) (Token, error)
	VerifyToken(tokenString string) (*Claims, error)
}

func New(cfg Config) (IManager, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}

package jwt

import (
	"errors"
	"fmt"
	"time"

	"spyglass-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("jwt: invalid token")

func validateConfig(cfg Config) error {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	return nil
}

// IssueToken signs a token for userID that expires after the configured TTL.
func (m *managerImpl) IssueToken(userID, username, role string) (Token, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return Token{Value: signed, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// VerifyToken checks the signature and expiry. A configured issuer must
// match, and so must the first configured audience.
func (m *managerImpl) VerifyToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience[0]))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify implements scope.Manager.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.VerifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	p := scope.Payload{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
		Subject:  claims.Subject,
		Id:       claims.ID,
		Issuer:   claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}

// CreateToken implements scope.Manager.
func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	if userID == "" {
		return "", errors.New("jwt: payload has no subject")
	}
	token, err := m.IssueToken(userID, payload.Username, payload.Role)
	if err != nil {
		return "", err
	}
	return token.Value, nil
}

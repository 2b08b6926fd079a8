package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config configures session token signing. Issuer and Audience, when set,
// are also required on verification.
type Config struct {
	SecretKey string
	Issuer    string
	Audience  []string
	TTL       time.Duration
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	audience  []string
	ttl       time.Duration
	now       func() time.Time
}

// Token is a signed session token and the moment it stops verifying.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Claims carry the session owner in Subject.
type Claims struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

package scope

// Payload is the verified content of a session token.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	Id        string `json:"jti"`
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// Manager verifies and issues session tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}

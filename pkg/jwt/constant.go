package jwt

import "time"

// MinSecretKeyLen matches the HS256 block size.
const MinSecretKeyLen = 32

const (
	defaultTTL = 7 * 24 * time.Hour
	// clockSkew tolerated on exp and iat between API replicas.
	clockSkew = 30 * time.Second
)

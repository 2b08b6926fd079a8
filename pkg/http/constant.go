package http

import "time"

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 1 * time.Second
	// DefaultMaxRetryWait caps the doubled wait and any Retry-After hint.
	DefaultMaxRetryWait = 20 * time.Second
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		RetryWait:    DefaultRetryWait,
		MaxRetryWait: DefaultMaxRetryWait,
	}
}

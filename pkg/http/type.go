package http

import (
	"net/http"
	"time"
)

// ClientConfig holds configuration for the HTTP client. The wait between
// attempts starts at RetryWait and doubles up to MaxRetryWait.
type ClientConfig struct {
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
	MaxRetryWait time.Duration
}

type clientImpl struct {
	client *http.Client
	config ClientConfig
}

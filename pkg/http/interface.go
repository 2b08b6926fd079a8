package http

import "context"

// IClient is a JSON HTTP client that retries transport errors, 429 and 5xx
// answers. Safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client.
func NewClient(cfg ClientConfig) IClient {
	if cfg.MaxRetryWait <= 0 {
		cfg.MaxRetryWait = DefaultMaxRetryWait
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}

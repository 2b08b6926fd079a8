package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = jsonBody
	}
	h := map[string]string{"Content-Type": "application/json"}
	for k, v := range headers {
		h[k] = v
	}
	return c.do(ctx, http.MethodPost, url, payload, h)
}

// do sends the request, retrying transport errors, 429 and 5xx responses.
// The request is rebuilt on every attempt since a sent body cannot be
// replayed. The last answer is returned as-is once retries run out.
func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	var lastErr error
	wait := time.Duration(0)
	for i := 0; i <= c.config.Retries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(wait):
			}
		}
		wait = c.backoff(i)

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
		}
		if retryable(resp.StatusCode) && i < c.config.Retries {
			lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
			if hint, ok := retryAfter(resp.Header.Get("Retry-After")); ok {
				wait = min(hint, c.config.MaxRetryWait)
			}
			continue
		}
		return body, resp.StatusCode, nil
	}
	return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, lastErr)
}

// backoff is the wait before attempt i+1.
func (c *clientImpl) backoff(i int) time.Duration {
	if c.config.RetryWait <= 0 {
		return 0
	}
	wait := c.config.RetryWait << i
	if wait <= 0 || wait > c.config.MaxRetryWait {
		return c.config.MaxRetryWait
	}
	return wait
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return time.Duration(secs) * time.Second, true
}

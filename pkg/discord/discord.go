package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) sendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLen),
			Color:       messageColors[options.Type],
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{Type: MessageTypeError, Title: title, Description: description}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "error", Value: truncate(err.Error(), maxFieldValueLen)}}
	}
	return d.sendEmbed(ctx, opts)
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.sendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}
	url := fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord: build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < 300 {
				return nil
			}
			err = fmt.Errorf("discord: webhook returned %d", resp.StatusCode)
		}
		lastErr = err
		if attempt < d.config.RetryCount {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
	}
	d.l.Warnf(ctx, "pkg.discord.send: giving up: %v", lastErr)
	return lastErr
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

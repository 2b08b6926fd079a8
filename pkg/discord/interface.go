package discord

import (
	"context"

	"spyglass-srv/pkg/log"
)

// IDiscord posts operator alerts to a Discord webhook.
type IDiscord interface {
	// SendError attaches err as an embed field when it is non-nil.
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
	Close() error
}

// DiscordWebhook identifies the webhook from its URL path.
type DiscordWebhook struct {
	ID    string
	Token string
}

// NewWithConfig returns an IDiscord for webhook. Start from DefaultConfig.
func NewWithConfig(l log.Logger, webhook *DiscordWebhook, cfg Config) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}

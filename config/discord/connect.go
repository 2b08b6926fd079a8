package discord

import (
	"spyglass-srv/config"
	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/log"
)

// Connect builds the alert client. Without a webhook id it returns nil and
// alerts are skipped.
func Connect(l log.Logger, cfg config.DiscordConfig) (discord.IDiscord, error) {
	if cfg.WebhookID == "" {
		return nil, nil
	}
	return discord.NewWithConfig(l, &discord.DiscordWebhook{
		ID:    cfg.WebhookID,
		Token: cfg.WebhookToken,
	}, clientConfig(cfg))
}

func clientConfig(cfg config.DiscordConfig) discord.Config {
	dc := discord.DefaultConfig()
	if cfg.Username != "" {
		dc.DefaultUsername = cfg.Username
	}
	return dc
}

package discord

import (
	"errors"
	"net/http"
	"time"

	"spyglass-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

const (
	defaultBaseURL    = "https://discord.com/api/webhooks"
	maxDescriptionLen = 4000
	maxFieldValueLen  = 1000
)

// Config tunes webhook delivery. BaseURL defaults to Discord's webhook root.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// DefaultConfig returns the webhook defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      time.Second,
		DefaultUsername: "Spyglass",
		BaseURL:         defaultBaseURL,
	}
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// MessageType defines different types of messages.
type MessageType string

const (
	MessageTypeInfo    MessageType = "info"
	MessageTypeSuccess MessageType = "success"
	MessageTypeWarning MessageType = "warning"
	MessageTypeError   MessageType = "error"
)

var messageColors = map[MessageType]int{
	MessageTypeInfo:    0x3498db,
	MessageTypeSuccess: 0x2ecc71,
	MessageTypeWarning: 0xf1c40f,
	MessageTypeError:   0xe74c3c,
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}

// MessageOptions contains options for creating a message.
type MessageOptions struct {
	Type        MessageType
	Title       string
	Description string
	Fields      []EmbedField
	Timestamp   time.Time
}

package discord

import (
	"testing"

	"spyglass-srv/config"
	"spyglass-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("no webhook", func(t *testing.T) {
		d, err := Connect(log.NewNop(), config.DiscordConfig{})
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := Connect(log.NewNop(), config.DiscordConfig{WebhookID: "123"})
		assert.Error(t, err)
	})

	t.Run("configured", func(t *testing.T) {
		d, err := Connect(log.NewNop(), config.DiscordConfig{WebhookID: "123", WebhookToken: "tok"})
		require.NoError(t, err)
		assert.NotNil(t, d)
	})
}

func TestClientConfig(t *testing.T) {
	assert.Equal(t, "Spyglass", clientConfig(config.DiscordConfig{}).DefaultUsername)
	assert.Equal(t, "ops", clientConfig(config.DiscordConfig{Username: "ops"}).DefaultUsername)
}

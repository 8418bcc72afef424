package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("NOTIFY_CHANNELS", "")
	t.Setenv("NOTIFY_EMAIL_FROM", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "support-desk", cfg.App.Name)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, []string{"console", "email", "sms", "push"}, cfg.Notification.Channels)
	assert.Equal(t, "support@example.com", cfg.Notification.EmailFrom)
}

func TestLoadChannelListNormalization(t *testing.T) {
	t.Setenv("NOTIFY_CHANNELS", " Console ,SMS,, push ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"console", "sms", "push"}, cfg.Notification.Channels)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the console app.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Notification NotificationConfig
}

// AppConfig controls application level behavior.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// NotificationConfig selects which channels the broadcaster registers.
type NotificationConfig struct {
	Channels  []string
	EmailFrom string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "support-desk"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Notification: NotificationConfig{
			Channels:  splitList(getEnv("NOTIFY_CHANNELS", "console,email,sms,push")),
			EmailFrom: getEnv("NOTIFY_EMAIL_FROM", "support@example.com"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

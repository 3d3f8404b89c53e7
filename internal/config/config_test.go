package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eweracs/go-shortlink/internal/config"
)

func TestParse(t *testing.T) {
	t.Run("defaults without env", func(t *testing.T) {
		os.Clearenv()
		opts := config.Parse()
		require.Equal(t, ":8080", opts.Addr)
		require.Equal(t, "http://localhost:8080", opts.PublicSiteBase)
		require.Empty(t, opts.Token)
		require.Empty(t, opts.DatabaseDSN)
		require.Empty(t, opts.AllowedOrigins)
		require.Zero(t, opts.LinkTTL)
		require.False(t, opts.EnableHTTPS)
	})

	t.Run("env overrides", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
		os.Setenv("PUBLIC_SITE_BASE", "https://example.dev")
		os.Setenv("SHORTENER_TOKEN", "s3cret")
		os.Setenv("DATABASE_URL", "postgres://test")
		os.Setenv("ALLOWED_ORIGINS", "https://example.dev, https://other.example ,")
		os.Setenv("LINK_TTL", "720h")
		os.Setenv("ENABLE_HTTPS", "true")

		opts := config.Parse()
		require.Equal(t, "127.0.0.1:9999", opts.Addr)
		require.Equal(t, "https://example.dev", opts.PublicSiteBase)
		require.Equal(t, "s3cret", opts.Token)
		require.Equal(t, "postgres://test", opts.DatabaseDSN)
		require.Equal(t, []string{"https://example.dev", "https://other.example"}, opts.AllowedOrigins)
		require.Equal(t, 720*time.Hour, opts.LinkTTL)
		require.True(t, opts.EnableHTTPS)
	})

	t.Run("invalid ttl ignored", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("LINK_TTL", "next tuesday")

		opts := config.Parse()
		require.Zero(t, opts.LinkTTL)
	})
}

func TestParseNotifier(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		opts := config.ParseNotifier()
		require.Equal(t, ":8081", opts.Addr)
		require.Empty(t, opts.BotToken)
		require.Empty(t, opts.TurnstileSecret)
	})

	t.Run("env", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("NOTIFIER_ADDRESS", ":9090")
		os.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
		os.Setenv("TELEGRAM_CHAT_ID", "chat-42")
		os.Setenv("TURNSTILE_SECRET_KEY", "turnstile-secret")

		opts := config.ParseNotifier()
		require.Equal(t, ":9090", opts.Addr)
		require.Equal(t, "bot-token", opts.BotToken)
		require.Equal(t, "chat-42", opts.ChatID)
		require.Equal(t, "turnstile-secret", opts.TurnstileSecret)
	})
}

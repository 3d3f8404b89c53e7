// Package config provides configuration for the shortener API and the
// notification relay, using command-line flags and environment variables.
// A .env file in the working directory is loaded first when present.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the shortener service configuration.
type Options struct {
	// Addr is the server's listening address (ip:port).
	Addr string

	// PublicSiteBase is the public site base URL both short-URL forms
	// are built on. Required.
	PublicSiteBase string

	// Token is the shared secret guarding the create endpoint. Required.
	Token string

	// DatabaseDSN selects the pooled Postgres store when set.
	DatabaseDSN string

	// SQLitePath selects the embedded store when set and DatabaseDSN is not.
	SQLitePath string

	// AllowedOrigins is the CORS allow-list; empty means wildcard.
	AllowedOrigins []string

	// LinkTTL enables the expiry sweep when positive.
	LinkTTL time.Duration

	// EnableHTTPS switches the listener to autocert TLS.
	EnableHTTPS bool

	// TLSHosts are the hostnames autocert may answer for.
	TLSHosts []string

	// EnablePprof starts the debug listener on localhost:6060.
	EnablePprof bool
}

// NotifierOptions holds the notification relay configuration.
type NotifierOptions struct {
	// Addr is the relay's listening address (ip:port).
	Addr string

	// BotToken and ChatID are the Telegram credentials. Both required
	// for messages to be sent.
	BotToken string
	ChatID   string

	// TurnstileSecret enables challenge verification when set.
	TurnstileSecret string

	// AllowedOrigins is the CORS allow-list; empty means wildcard.
	AllowedOrigins []string
}

var options = &Options{}

func init() {
	flag.StringVar(&options.Addr, "a", ":8080", "run on ip:port server")
	flag.StringVar(&options.PublicSiteBase, "b", "http://localhost:8080", "public site base url")
	flag.StringVar(&options.DatabaseDSN, "d", "", "postgres dsn")
	flag.StringVar(&options.SQLitePath, "f", "", "path to embedded sqlite database")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses flags and environment variables for the shortener service.
// Environment variables win over flags.
func Parse() *Options {
	_ = godotenv.Load()
	flag.Parse()

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		options.Addr = addr
	}

	if base := os.Getenv("PUBLIC_SITE_BASE"); base != "" {
		options.PublicSiteBase = base
	}

	options.Token = os.Getenv("SHORTENER_TOKEN")

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		options.DatabaseDSN = dsn
	}

	if path := os.Getenv("SQLITE_PATH"); path != "" {
		options.SQLitePath = path
	}

	options.AllowedOrigins = splitOrigins(os.Getenv("ALLOWED_ORIGINS"))

	options.LinkTTL = 0
	if ttl := os.Getenv("LINK_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			options.LinkTTL = d
		}
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		options.EnableHTTPS = err == nil && httpsMode
	}

	options.TLSHosts = splitOrigins(os.Getenv("TLS_HOSTS"))

	if enablePprof := os.Getenv("ENABLE_PPROF"); enablePprof != "" {
		pprofMode, err := strconv.ParseBool(enablePprof)
		options.EnablePprof = err == nil && pprofMode
	}

	return options
}

// ParseNotifier reads the relay configuration. The relay is configured
// through the environment only.
func ParseNotifier() *NotifierOptions {
	_ = godotenv.Load()

	opts := &NotifierOptions{
		Addr:            ":8081",
		BotToken:        os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:          os.Getenv("TELEGRAM_CHAT_ID"),
		TurnstileSecret: os.Getenv("TURNSTILE_SECRET_KEY"),
		AllowedOrigins:  splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
	}

	if addr := os.Getenv("NOTIFIER_ADDRESS"); addr != "" {
		opts.Addr = addr
	}

	return opts
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

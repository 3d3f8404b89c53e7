package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/config"
	"github.com/eweracs/go-shortlink/internal/logger"
	"github.com/eweracs/go-shortlink/internal/middleware"
	"github.com/eweracs/go-shortlink/internal/notify"
)

func main() {
	options := config.ParseNotifier()

	log, err := logger.New("info")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	// A misconfigured relay still serves /notify and answers 500, so the
	// web client sees a response instead of a connection error.
	var sender notify.MessageSender
	if options.BotToken != "" && options.ChatID != "" {
		sender = notify.NewTelegramClient(options.BotToken, options.ChatID)
	} else {
		log.Warn("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID missing, notifications disabled")
	}

	var verifier notify.ChallengeVerifier
	if options.TurnstileSecret != "" {
		verifier = notify.NewTurnstileVerifier(options.TurnstileSecret)
		log.Info("turnstile verification enabled")
	} else {
		log.Warn("TURNSTILE_SECRET_KEY missing, challenge verification disabled")
	}

	h := notify.NewHandler(log, sender, verifier)
	cors := middleware.NewCORSPolicy(options.AllowedOrigins)
	r := notify.Init(log, h, cors)

	log.Info("Notifier is running", zap.String("addr", options.Addr))
	if err := http.ListenAndServe(options.Addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

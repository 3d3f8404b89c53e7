// Package notify implements the download notification relay: a Turnstile
// challenge check in front of a Telegram message.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTelegramAPIBase = "https://api.telegram.org"

const outboundTimeout = 10 * time.Second

// MessageSender delivers a notification text to the operator.
type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// TelegramClient sends messages through the Telegram bot API.
type TelegramClient struct {
	client   *http.Client
	apiBase  string
	botToken string
	chatID   string
}

func NewTelegramClient(botToken, chatID string) *TelegramClient {
	return &TelegramClient{
		client:   &http.Client{Timeout: outboundTimeout},
		apiBase:  defaultTelegramAPIBase,
		botToken: botToken,
		chatID:   chatID,
	}
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   text,
	})
	if err != nil {
		return err
	}

	url := c.apiBase + "/bot" + c.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("telegram sendMessage returned %s", resp.Status)
	}

	return nil
}

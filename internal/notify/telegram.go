package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Update is one entry from the Bot API getUpdates long poll.
type Update struct {
	UpdateID int64            `json:"update_id"`
	Message  *IncomingMessage `json:"message"`
}

// IncomingMessage is a message received by the bot.
type IncomingMessage struct {
	Chat Chat   `json:"chat"`
	Text string `json:"text"`
}

// Chat identifies a Telegram chat.
type Chat struct {
	ID int64 `json:"id"`
}

type apiResponse struct {
	OK          bool     `json:"ok"`
	Description string   `json:"description"`
	Result      []Update `json:"result"`
}

// Telegram delivers messages via the Telegram Bot API.
type Telegram struct {
	client    *resty.Client
	token     string
	chatID    string
	parseMode string
	limit     int
	logger    *slog.Logger
}

// TelegramOption configures a Telegram client.
type TelegramOption func(*Telegram)

// NewTelegram creates a Bot API client. An empty token or chat id yields
// a disabled client: Enabled reports false and sends are rejected.
func NewTelegram(apiURL, token, chatID string, opts ...TelegramOption) *Telegram {
	t := &Telegram{
		client:    resty.New().SetBaseURL(strings.TrimRight(apiURL, "/") + "/bot" + token).SetTimeout(10 * time.Second),
		token:     token,
		chatID:    chatID,
		parseMode: "Markdown",
		limit:     4000,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// WithParseMode sets the Telegram parse mode ("Markdown" or "HTML").
func WithParseMode(mode string) TelegramOption {
	return func(t *Telegram) {
		t.parseMode = mode
	}
}

// WithMessageLimit sets the maximum characters per message part.
func WithMessageLimit(limit int) TelegramOption {
	return func(t *Telegram) {
		t.limit = limit
	}
}

// WithTelegramTimeout sets the HTTP timeout for Bot API calls.
func WithTelegramTimeout(d time.Duration) TelegramOption {
	return func(t *Telegram) {
		t.client.SetTimeout(d)
	}
}

// WithTelegramLogger sets the logger.
func WithTelegramLogger(logger *slog.Logger) TelegramOption {
	return func(t *Telegram) {
		t.logger = logger
	}
}

// Enabled reports whether credentials are configured.
func (t *Telegram) Enabled() bool {
	return t.token != "" && t.chatID != ""
}

// SendMessage delivers text to the configured chat, splitting messages
// that exceed the limit.
func (t *Telegram) SendMessage(ctx context.Context, text string) error {
	if !t.Enabled() {
		return fmt.Errorf("telegram credentials not configured")
	}
	return t.SendTo(ctx, t.chatID, text)
}

// SendTo delivers text to an explicit chat id.
func (t *Telegram) SendTo(ctx context.Context, chatID, text string) error {
	parts := splitMessage(text, t.limit)
	for i, part := range parts {
		if len(parts) > 1 {
			part = fmt.Sprintf("Part %d/%d:\n\n%s", i+1, len(parts), part)
		}
		if err := t.sendPart(ctx, chatID, part); err != nil {
			return fmt.Errorf("send part %d/%d: %w", i+1, len(parts), err)
		}
	}
	return nil
}

func (t *Telegram) sendPart(ctx context.Context, chatID, text string) error {
	var result apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"chat_id":                  chatID,
			"text":                     text,
			"parse_mode":               t.parseMode,
			"disable_web_page_preview": true,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("post sendMessage: %w", err)
	}
	if resp.IsError() || !result.OK {
		return fmt.Errorf("telegram api error %d: %s", resp.StatusCode(), result.Description)
	}
	return nil
}

// GetUpdates long-polls the Bot API for incoming updates after offset.
func (t *Telegram) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	if t.token == "" {
		return nil, fmt.Errorf("telegram credentials not configured")
	}

	var result apiResponse
	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"offset":  fmt.Sprintf("%d", offset),
			"timeout": fmt.Sprintf("%d", int(timeout.Seconds())),
		}).
		SetResult(&result).
		SetError(&result).
		Get("/getUpdates")
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}
	if resp.IsError() || !result.OK {
		return nil, fmt.Errorf("telegram api error %d: %s", resp.StatusCode(), result.Description)
	}
	return result.Result, nil
}

// splitMessage breaks text into parts no longer than limit, preferring
// newline boundaries.
func splitMessage(text string, limit int) []string {
	if limit < 1 {
		return []string{text}
	}

	var parts []string
	for len(text) > limit {
		splitAt := strings.LastIndex(text[:limit], "\n")
		if splitAt <= 0 {
			splitAt = limit
		}
		parts = append(parts, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], "\n")
	}
	return append(parts, text)
}

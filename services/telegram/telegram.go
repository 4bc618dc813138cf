package telegram

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"bazaarbot/logger"
	"bazaarbot/pkg/errors"

	"github.com/go-resty/resty/v2"
)

// ParseMode selects the markup flavor Telegram renders the message with.
type ParseMode string

const (
	ParseModeHTML     ParseMode = "HTML"
	ParseModeMarkdown ParseMode = "Markdown"
)

// CaptionLimit is Telegram's byte cap for photo captions.
const CaptionLimit = 1024

// Sender delivers formatted messages to one chat channel.
type Sender interface {
	SendMessage(ctx context.Context, text string, mode ParseMode) error
	SendPhoto(ctx context.Context, photoURL, caption string, mode ParseMode) error
}

// Client talks to the Telegram bot API. One client posts to one chat.
type Client struct {
	http   *resty.Client
	chatID string
	log    *logger.Logger
}

// NewClient creates a Telegram client. apiURL is the API host
// (https://api.telegram.org in production, an httptest server in tests).
func NewClient(apiURL, token, chatID string, timeout time.Duration) *Client {
	c := resty.New()
	c.SetBaseURL(strings.TrimRight(apiURL, "/") + "/bot" + token)
	c.SetTimeout(timeout)

	return &Client{
		http:   c,
		chatID: chatID,
		log:    logger.ForComponent("telegram"),
	}
}

// SendMessage posts a text message. Non-2xx responses count as a
// delivery failure for this one message only.
func (c *Client) SendMessage(ctx context.Context, text string, mode ParseMode) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":                  c.chatID,
			"text":                     text,
			"parse_mode":               string(mode),
			"disable_web_page_preview": "true",
		}).
		Post("/sendMessage")
	if err != nil {
		return errors.NewDelivery("sendMessage", "request failed", err)
	}
	if !resp.IsSuccess() {
		return errors.NewDelivery("sendMessage",
			fmt.Sprintf("status %d: %s", resp.StatusCode(), resp.String()), nil)
	}
	return nil
}

// SendPhoto posts a photo by URL with a caption. The caption is
// clamped to Telegram's limit before sending.
func (c *Client) SendPhoto(ctx context.Context, photoURL, caption string, mode ParseMode) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"chat_id":                  c.chatID,
			"photo":                    photoURL,
			"caption":                  ClampCaption(caption, CaptionLimit),
			"parse_mode":               string(mode),
			"disable_web_page_preview": "true",
		}).
		Post("/sendPhoto")
	if err != nil {
		return errors.NewDelivery("sendPhoto", "request failed", err)
	}
	if !resp.IsSuccess() {
		return errors.NewDelivery("sendPhoto",
			fmt.Sprintf("status %d: %s", resp.StatusCode(), resp.String()), nil)
	}
	return nil
}

var danglingTagRe = regexp.MustCompile(`<[^>]*$`)

// ClampCaption trims text to at most maxBytes without splitting a
// UTF-8 rune, then drops any markup tag the cut left open.
func ClampCaption(text string, maxBytes int) string {
	if len(text) <= maxBytes {
		return text
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	text = text[:cut]
	text = danglingTagRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTelegramBase = "https://api.telegram.org"

// TelegramNotifier sends owner notifications to a Telegram chat via the Bot
// API.
type TelegramNotifier struct {
	token   string
	chatID  int64
	baseURL string
	http    *http.Client
}

var _ Notifier = (*TelegramNotifier)(nil)

// NewTelegramNotifier creates a TelegramNotifier for the given bot token and
// destination chat.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		baseURL: defaultTelegramBase,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify posts the message to the configured chat. Errors are logged, never
// returned: intake must succeed whether or not the owner hears about it.
func (t *TelegramNotifier) Notify(ctx context.Context, msg Message) {
	endpoint := t.baseURL + "/bot" + t.token + "/sendMessage"
	form := url.Values{
		"chat_id": {strconv.FormatInt(t.chatID, 10)},
		"text":    {msg.Title + "\n" + msg.Content},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		slog.Error("telegram notify: build request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.http.Do(req)
	if err != nil {
		slog.Error("telegram notify: send", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result struct {
			Description string `json:"description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		slog.Error("telegram notify: api error", "status", resp.StatusCode, "description", result.Description)
	}
}

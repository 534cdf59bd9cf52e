package notify

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts alerts to a Telegram chat. The recipient argument
// may override the default chat ID when it parses as one.
type TelegramNotifier struct {
	api           *tgbotapi.BotAPI
	defaultChatID int64
}

func NewTelegramNotifier(botToken string, defaultChatID int64) (*TelegramNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("Telegram bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	return &TelegramNotifier{api: api, defaultChatID: defaultChatID}, nil
}

func (n *TelegramNotifier) Name() string {
	return "telegram"
}

func (n *TelegramNotifier) Send(ctx context.Context, recipient, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chatID := n.defaultChatID
	if parsed, err := strconv.ParseInt(recipient, 10, 64); err == nil && parsed != 0 {
		chatID = parsed
	}
	if chatID == 0 {
		return fmt.Errorf("no Telegram chat ID configured")
	}

	msg := tgbotapi.NewMessage(chatID, message)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

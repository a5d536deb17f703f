package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier delivers pipeline outcome messages over the bot API.
type TelegramNotifier struct {
	sender      Sender
	adminChatID int64
}

// NewNotifier returns a pipeline notifier that messages users directly
// and the operator at the configured chat.
func NewNotifier(sender Sender, adminChatID int64) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, adminChatID: adminChatID}
}

func (n *TelegramNotifier) NotifyUser(_ context.Context, userID int64, text string) error {
	_, err := n.sender.Send(tgbotapi.NewMessage(userID, text))
	return err
}

func (n *TelegramNotifier) NotifyOperator(_ context.Context, text string) error {
	_, err := n.sender.Send(tgbotapi.NewMessage(n.adminChatID, text))
	return err
}

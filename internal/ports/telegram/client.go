package telegram

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IClient интерфейс для клиента Telegram API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard domain.InlineKeyboard) error
	AnswerCallbackQuery(ctx context.Context, callbackID string) error
}

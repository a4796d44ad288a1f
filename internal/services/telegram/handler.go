package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if update.CallbackQuery != nil {
		return s.HandleCallbackQuery(ctx, update.CallbackQuery, update.UpdateID)
	}

	message := update.Message
	if message == nil {
		message = update.EditedMessage
	}
	if message != nil {
		return s.HandleMessage(ctx, message, update.UpdateID)
	}

	return nil
}

// HandleCallbackQuery подтверждает callback и роутит его в usecase
func (s *Service) HandleCallbackQuery(ctx context.Context, cq *domain.CallbackQuery, updateID int64) error {
	if cq.Message == nil || cq.Message.Chat == nil {
		s.Log.Debug("ignoring callback query without message", "update_id", updateID)
		return nil
	}

	// Подтверждаем сразу, иначе Telegram будет доставлять повторно
	if err := s.Client.AnswerCallbackQuery(ctx, cq.ID); err != nil {
		s.Log.Error("failed to answer callback query",
			"error", err,
			"callback_id", cq.ID,
			"update_id", updateID,
		)
	}

	data := ""
	if cq.Data != nil {
		data = *cq.Data
	}

	return s.Bot.HandleCallback(ctx, cq.Message.Chat.ID, data, updateID)
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat == nil {
		s.Log.Debug("ignoring message without chat", "update_id", updateID)
		return nil
	}

	if message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	text := ""
	if message.Text != nil {
		text = *message.Text
	}

	return s.routeTextMessage(ctx, message.Chat.ID, text, updateID)
}

// routeTextMessage роутит в команду/текст
func (s *Service) routeTextMessage(ctx context.Context, chatID int64, text string, updateID int64) error {
	if IsCommand(text) {
		command := ParseCommand(text)
		return s.Bot.HandleCommand(ctx, chatID, command, updateID)
	}

	return s.Bot.HandleText(ctx, chatID, text, updateID)
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}

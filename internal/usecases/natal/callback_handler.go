package natal

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

// HandleCallback обрабатывает нажатие inline-кнопки.
// Выбор темы принимается из любого состояния: набор тем закрыт,
// дополнительная валидация ввода не нужна.
func (s *Service) HandleCallback(ctx context.Context, chatID int64, data string, updateID int64) error {
	if !strings.HasPrefix(data, topicCallbackPrefix) {
		s.Log.Debug("ignoring unknown callback data",
			"data", data,
			"chat_id", chatID,
			"update_id", updateID,
		)
		return nil
	}

	topic := domain.Topic(strings.TrimPrefix(data, topicCallbackPrefix))
	if !topic.IsValid() {
		s.Log.Warn("invalid topic in callback data",
			"data", data,
			"chat_id", chatID,
			"update_id", updateID,
		)
		return nil
	}

	unlock := s.lockChat(chatID)
	defer unlock()

	sess, _, err := s.Sessions.GetOrCreate(ctx, chatID)
	if err != nil {
		s.Log.Error("failed to load session",
			"error", err,
			"chat_id", chatID,
			"update_id", updateID,
		)
		return fmt.Errorf("failed to load session: %w", err)
	}

	sess.Data.Topic = &topic
	sess.State = domain.StateAskFreeform
	s.saveSession(ctx, sess)

	return s.sendMessage(ctx, chatID, texts.AskQuestion)
}

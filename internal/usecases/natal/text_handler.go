package natal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

// HandleText обрабатывает текстовое сообщение: один шаг диалога сбора данных
// либо раунд вопроса по карте
func (s *Service) HandleText(ctx context.Context, chatID int64, text string, updateID int64) error {
	unlock := s.lockChat(chatID)
	defer unlock()

	text = strings.TrimSpace(text)

	sess, created, err := s.Sessions.GetOrCreate(ctx, chatID)
	if err != nil {
		s.Log.Error("failed to load session",
			"error", err,
			"chat_id", chatID,
			"update_id", updateID,
		)
		return fmt.Errorf("failed to load session: %w", err)
	}

	// Первый контакт: сессия только что создана, сообщение не считаем вводом
	if created {
		return s.sendMessage(ctx, chatID, texts.FirstContact)
	}

	if text == "" {
		return s.sendMessage(ctx, chatID, texts.EmptyText)
	}

	res := advance(sess, text)

	switch res.action {
	case actionFreeform:
		return s.runFreeformRound(ctx, sess, text, updateID)

	case actionAskTopic:
		s.saveSession(ctx, sess)
		return s.sendMessageWithKeyboard(ctx, chatID, res.reply, topicKeyboard())

	default:
		s.saveSession(ctx, sess)
		return s.sendMessage(ctx, chatID, res.reply)
	}
}

// saveSession сохраняет сессию; ошибка сохранения не прерывает ответ пользователю
func (s *Service) saveSession(ctx context.Context, sess *domain.Session) {
	sess.UpdatedAt = time.Now()

	if err := s.Sessions.Save(ctx, sess); err != nil {
		s.Log.Error("failed to save session",
			"error", err,
			"chat_id", sess.ChatID,
			"state", sess.State,
		)
	}
}

package natal

import (
	"context"
	"fmt"
	"strings"

	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
)

const historyLimit = 5

// HandleCommand обрабатывает команды. /start и /reset работают из любого
// состояния и безусловно заменяют сессию свежей.
func (s *Service) HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error {
	switch command {
	case "start":
		return s.handleRestart(ctx, chatID, texts.StartGreeting)
	case "reset":
		return s.handleRestart(ctx, chatID, texts.ResetDone)
	case "history":
		return s.handleHistory(ctx, chatID)
	case "help":
		return s.sendMessage(ctx, chatID, texts.HelpCommand)
	default:
		return s.sendMessage(ctx, chatID, texts.FormatUnknownCommand(command))
	}
}

// handleHistory показывает последние отвеченные раунды чата
func (s *Service) handleHistory(ctx context.Context, chatID int64) error {
	if s.HistoryRepo == nil {
		return s.sendMessage(ctx, chatID, texts.HistoryUnavailable)
	}

	rounds, err := s.HistoryRepo.ListByChat(ctx, chatID, historyLimit)
	if err != nil {
		s.Log.Error("failed to list rounds",
			"error", err,
			"chat_id", chatID,
		)
		return s.sendMessage(ctx, chatID, texts.HistoryError)
	}

	if len(rounds) == 0 {
		return s.sendMessage(ctx, chatID, texts.HistoryEmpty)
	}

	var b strings.Builder
	b.WriteString(texts.HistoryHeader)
	for i, round := range rounds {
		fmt.Fprintf(&b, "\n\n%d. [%s] %s", i+1, round.Topic.Label(), round.Question)
	}

	return s.sendMessage(ctx, chatID, b.String())
}

// handleRestart заменяет сессию свежей и приглашает ввести дату
func (s *Service) handleRestart(ctx context.Context, chatID int64, greeting string) error {
	unlock := s.lockChat(chatID)
	defer unlock()

	if _, err := s.Sessions.Replace(ctx, chatID); err != nil {
		s.Log.Error("failed to replace session",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to replace session: %w", err)
	}

	return s.sendMessage(ctx, chatID, greeting)
}

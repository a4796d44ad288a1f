package repository

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IHistoryRepo журнал отвеченных раундов вопрос/ответ
type IHistoryRepo interface {
	Create(ctx context.Context, round *domain.Round) error
	ListByChat(ctx context.Context, chatID int64, limit int) ([]domain.Round, error)
}

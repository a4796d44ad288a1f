package repository

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// ISessionStore хранилище сессий диалога, по одной на чат
type ISessionStore interface {
	// GetOrCreate возвращает существующую сессию или создаёт свежую в ASK_DATE.
	// created=true означает, что сессии ещё не было (первый контакт)
	GetOrCreate(ctx context.Context, chatID int64) (session *domain.Session, created bool, err error)

	// Save сохраняет изменённую сессию
	Save(ctx context.Context, session *domain.Session) error

	// Replace безусловно заменяет сессию свежей (для /start и /reset)
	Replace(ctx context.Context, chatID int64) (*domain.Session, error)
}

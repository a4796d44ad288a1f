package sessionRepo

import (
	"context"
	"sync"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	ports "github.com/admin/tg-bots/natal-bot/internal/ports/repository"
)

// InMemoryStore хранит сессии в памяти процесса.
// Без вытеснения и TTL: время жизни - время жизни процесса.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
	log      *slog.Logger
}

func NewInMemoryStore(log *slog.Logger) ports.ISessionStore {
	return &InMemoryStore{
		sessions: make(map[int64]*domain.Session),
		log:      log,
	}
}

// GetOrCreate возвращает существующую сессию или создаёт свежую в ASK_DATE
func (s *InMemoryStore) GetOrCreate(_ context.Context, chatID int64) (*domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[chatID]; ok {
		return sess, false, nil
	}

	sess := domain.NewSession(chatID)
	s.sessions[chatID] = sess

	s.log.Debug("session created", "chat_id", chatID)
	return sess, true, nil
}

// Save сохраняет сессию
func (s *InMemoryStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ChatID] = session
	return nil
}

// Replace безусловно заменяет сессию свежей
func (s *InMemoryStore) Replace(_ context.Context, chatID int64) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := domain.NewSession(chatID)
	s.sessions[chatID] = sess

	s.log.Debug("session replaced", "chat_id", chatID)
	return sess, nil
}

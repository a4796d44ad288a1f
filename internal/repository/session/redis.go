package sessionRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	ports "github.com/admin/tg-bots/natal-bot/internal/ports/repository"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "natal:session:"

// RedisStore хранит сессии в Redis в виде JSON.
// Сессии переживают рестарт процесса; TTL не ставим.
type RedisStore struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewRedisStore(rdb *redis.Client, log *slog.Logger) ports.ISessionStore {
	return &RedisStore{
		rdb: rdb,
		log: log,
	}
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("%s%d", sessionKeyPrefix, chatID)
}

// GetOrCreate возвращает существующую сессию или создаёт свежую в ASK_DATE
func (s *RedisStore) GetOrCreate(ctx context.Context, chatID int64) (*domain.Session, bool, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(chatID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			sess, err := s.Replace(ctx, chatID)
			return sess, true, err
		}
		return nil, false, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		// Битая запись - заводим свежую сессию, пользователь начнёт с даты
		s.log.Warn("failed to unmarshal stored session, replacing",
			"error", err,
			"chat_id", chatID,
		)
		fresh, err := s.Replace(ctx, chatID)
		return fresh, true, err
	}

	return &sess, false, nil
}

// Save сохраняет сессию
func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKey(session.ChatID), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}

	return nil
}

// Replace безусловно заменяет сессию свежей
func (s *RedisStore) Replace(ctx context.Context, chatID int64) (*domain.Session, error) {
	sess := domain.NewSession(chatID)

	if err := s.Save(ctx, sess); err != nil {
		return nil, err
	}

	s.log.Debug("session replaced", "chat_id", chatID)
	return sess, nil
}

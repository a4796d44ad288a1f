package historyRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/persistence"
	ports "github.com/admin/tg-bots/natal-bot/internal/ports/repository"
)

type roundColumns struct {
	TableName string
	ID        string
	ChatID    string
	Topic     string
	Question  string
	Answer    string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns roundColumns
}

// New создаёт новый репозиторий журнала раундов
func New(db persistence.Persistence, log *slog.Logger) ports.IHistoryRepo {
	cols := roundColumns{
		TableName: "rounds",
		ID:        "id",
		ChatID:    "chat_id",
		Topic:     "topic",
		Question:  "question",
		Answer:    "answer",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.ChatID,
		r.columns.Topic,
		r.columns.Question,
		r.columns.Answer,
		r.columns.CreatedAt)
}

// Create записывает отвеченный раунд
func (r *Repository) Create(ctx context.Context, round *domain.Round) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		round.ID,
		round.ChatID,
		round.Topic,
		round.Question,
		round.Answer,
		round.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create round",
			"error", err,
			"chat_id", round.ChatID,
			"round_id", round.ID)
		return fmt.Errorf("failed to create round: %w", err)
	}

	r.Log.Debug("round created successfully",
		"id", round.ID,
		"chat_id", round.ChatID)
	return nil
}

// ListByChat возвращает последние раунды чата, новые первыми
func (r *Repository) ListByChat(ctx context.Context, chatID int64, limit int) ([]domain.Round, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ChatID,
		r.columns.CreatedAt)

	var rounds []domain.Round
	if err := r.db.Select(ctx, &rounds, query, chatID, limit); err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}

	return rounds, nil
}

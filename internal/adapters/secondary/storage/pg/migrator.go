package pg

import (
	"fmt"

	"log/slog"

	"github.com/jmoiron/sqlx"
)

// схема журнала раундов; создаётся идемпотентно при старте
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rounds (
		id UUID PRIMARY KEY,
		chat_id BIGINT NOT NULL,
		topic TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rounds_chat_id_created_at ON rounds (chat_id, created_at DESC)`,
}

// RunMigrations применяет миграции схемы
func RunMigrations(db *sqlx.DB, log *slog.Logger) error {
	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", i, err)
		}
	}

	log.Info("migrations applied successfully", "count", len(migrations))
	return nil
}

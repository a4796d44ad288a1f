package domain

import (
	"time"

	"github.com/google/uuid"
)

// Round - один отвеченный раунд вопрос/ответ по натальной карте
type Round struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ChatID    int64     `json:"chat_id" db:"chat_id"`
	Topic     Topic     `json:"topic" db:"topic"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

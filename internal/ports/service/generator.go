package service

import "context"

// IGenerator интерфейс генерации текста интерпретации
type IGenerator interface {
	// Generate отправляет системный промпт и вопрос пользователя,
	// возвращает готовый текст ответа
	Generate(ctx context.Context, systemPrompt string, userText string) (string, error)
}

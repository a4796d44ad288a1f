package service

import "context"

// IBotService интерфейс бизнес-логики бота, в который роутит телеграм-сервис
type IBotService interface {
	HandleCommand(ctx context.Context, chatID int64, command string, updateID int64) error
	HandleText(ctx context.Context, chatID int64, text string, updateID int64) error
	HandleCallback(ctx context.Context, chatID int64, data string, updateID int64) error
}

package telegram

import (
	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
	portsTelegram "github.com/admin/tg-bots/natal-bot/internal/ports/telegram"
)

// Service роутинг обновлений Telegram в бизнес-логику бота
type Service struct {
	Bot    service.IBotService
	Client portsTelegram.IClient
	Log    *slog.Logger
}

func New(
	bot service.IBotService,
	client portsTelegram.IClient,
	log *slog.Logger,
) *Service {
	return &Service{
		Bot:    bot,
		Client: client,
		Log:    log,
	}
}

package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http/controllers/healthcheck"
	telegramController "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http/controllers/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/ephemeris"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/nominatim"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/pg"
	tgClient "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/telegram"
	portsRepo "github.com/admin/tg-bots/natal-bot/internal/ports/repository"
	portsService "github.com/admin/tg-bots/natal-bot/internal/ports/service"
	historyRepo "github.com/admin/tg-bots/natal-bot/internal/repository/history"
	sessionRepo "github.com/admin/tg-bots/natal-bot/internal/repository/session"
	chartService "github.com/admin/tg-bots/natal-bot/internal/services/chart"
	telegramService "github.com/admin/tg-bots/natal-bot/internal/services/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Deps собранные зависимости приложения
type Deps struct {
	HTTPServer *http.Server
	DB         *sqlx.DB      // nil = без журнала раундов
	Redis      *redis.Client // nil = сессии в памяти
}

// initDeps собирает все адаптеры, сервисы и usecase
func (a *App) initDeps(ctx context.Context) (*Deps, error) {
	deps := &Deps{}

	// Хранилище сессий: Redis, если настроен, иначе память процесса
	var sessions portsRepo.ISessionStore
	if a.Cfg.Redis.Enabled() {
		rdb, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		deps.Redis = rdb
		sessions = sessionRepo.NewRedisStore(rdb, a.Log)
		a.Log.Info("redis connected successfully, sessions persisted")
	} else {
		sessions = sessionRepo.NewInMemoryStore(a.Log)
		a.Log.Info("sessions stored in memory")
	}

	// Журнал раундов: только при настроенном Postgres
	var history portsRepo.IHistoryRepo
	if a.Cfg.Postgres.Enabled() {
		db, err := a.Cfg.Postgres.NewConnection()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := pg.RunMigrations(db, a.Log); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		deps.DB = db
		history = historyRepo.New(pg.NewDB(db), a.Log)
		a.Log.Info("postgres connected successfully")
	}

	// Внешние коллабораторы
	telegramClient := tgClient.NewClient(a.Cfg.Telegram.Token, a.Log)
	ephemerisClient := ephemeris.NewClient(a.Cfg.Ephemeris, a.Log)
	geocoder := nominatim.NewClient(a.Cfg.Nominatim, a.Log)

	// Генерация опциональна: без ключа freeform-шаг отвечает "не настроено"
	var generator portsService.IGenerator
	if a.Cfg.OpenAI.IsConfigured() {
		generator = openai.NewClient(a.Cfg.OpenAI, a.Log)
	} else {
		a.Log.Warn("openai api key is not configured, generation disabled")
	}

	charts := chartService.New(ephemerisClient, a.Log)

	botService := natal.New(
		sessions,
		history,
		telegramClient,
		charts,
		geocoder,
		generator,
		a.Log,
	)

	tgService := telegramService.New(botService, telegramClient, a.Log)

	webhookController := telegramController.New(tgService, a.Cfg.Telegram.WebhookSecret, a.Log)
	healthCheck := healthcheckController.New(deps.DB, a.Log)

	deps.HTTPServer = server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, webhookController)

	if err := a.registerBot(ctx, telegramClient); err != nil {
		return nil, err
	}

	return deps, nil
}

// registerBot регистрирует вебхук и команды бота
func (a *App) registerBot(ctx context.Context, client *tgClient.Client) error {
	if a.Cfg.Telegram.PublicURL == "" {
		a.Log.Warn("public url is not configured, webhook not registered")
		return nil
	}

	if err := client.SetWebhook(ctx, a.Cfg.Telegram.PublicURL, a.Cfg.Telegram.WebhookSecret); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}

	commands := []tgClient.BotCommand{
		{Command: "start", Description: "Начать ввод данных заново"},
		{Command: "reset", Description: "Сбросить введённые данные"},
		{Command: "history", Description: "Последние вопросы"},
		{Command: "help", Description: "Справка"},
	}
	if err := client.SetMyCommands(ctx, commands); err != nil {
		// не фатально: бот работает и без меню команд
		a.Log.Warn("failed to register bot commands", "error", err)
	}

	return nil
}

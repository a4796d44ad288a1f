package natal

import (
	"sync"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/ports/repository"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
	"github.com/admin/tg-bots/natal-bot/internal/ports/telegram"
)

// Service бизнес-логика натального бота: диалог сбора данных и раунды вопросов
type Service struct {
	Sessions       repository.ISessionStore
	HistoryRepo    repository.IHistoryRepo // nil = журнал раундов отключён
	TelegramClient telegram.IClient
	ChartService   service.IChartService
	Geocoder       service.IGeocoder
	Generator      service.IGenerator // nil = генерация не настроена
	Log            *slog.Logger

	// per-chat мьютексы: цикл чтение-изменение-запись сессии атомарен
	// относительно других событий того же чата
	chatLocks sync.Map // map[int64]*sync.Mutex
}

// New создаёт новый сервис бизнес-логики натального бота
func New(
	sessions repository.ISessionStore,
	historyRepo repository.IHistoryRepo,
	telegramClient telegram.IClient,
	chartService service.IChartService,
	geocoder service.IGeocoder,
	generator service.IGenerator,
	log *slog.Logger,
) *Service {
	return &Service{
		Sessions:       sessions,
		HistoryRepo:    historyRepo,
		TelegramClient: telegramClient,
		ChartService:   chartService,
		Geocoder:       geocoder,
		Generator:      generator,
		Log:            log,
	}
}

// lockChat берёт мьютекс чата и возвращает функцию разблокировки
func (s *Service) lockChat(chatID int64) func() {
	v, _ := s.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

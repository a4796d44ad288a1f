package service

import (
	"context"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IChartService интерфейс конвейера расчёта натальной карты
type IChartService interface {
	// Compute рассчитывает карту по координатам, локальной дате/времени
	// и IANA-идентификатору часового пояса. Любая ошибка фатальна для раунда.
	Compute(ctx context.Context, coords domain.Coordinates, date time.Time, dayTime domain.DayTime, timezone string) (*domain.Chart, error)
}

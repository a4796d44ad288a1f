package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IGeocoder интерфейс геокодинга места рождения
type IGeocoder interface {
	// Search ищет координаты по произвольной строке запроса.
	// found=false означает "место не найдено" (не ошибка транспорта).
	Search(ctx context.Context, query string) (coords *domain.Coordinates, found bool, err error)
}

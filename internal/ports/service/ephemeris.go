package service

import (
	"context"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

// IEphemeris интерфейс астрономического оракула (эфемеридное API)
type IEphemeris interface {
	// BodyLongitude возвращает геоцентрическую тропическую эклиптическую
	// долготу тела на момент jd (юлианский день, UT)
	BodyLongitude(ctx context.Context, jd float64, body domain.Body) (float64, error)

	// Houses возвращает углы домов по Плацидусу для (jd, широта, долгота)
	Houses(ctx context.Context, jd float64, lat, lon float64) (*domain.Houses, error)
}

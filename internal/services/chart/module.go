package chart

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	"github.com/admin/tg-bots/natal-bot/internal/ports/service"
)

// Service конвейер расчёта натальной карты поверх эфемеридного API
type Service struct {
	Ephemeris service.IEphemeris
	Log       *slog.Logger
}

// New создаёт новый сервис расчёта карты
func New(ephemeris service.IEphemeris, log *slog.Logger) service.IChartService {
	return &Service{
		Ephemeris: ephemeris,
		Log:       log,
	}
}

// Compute рассчитывает карту: локальное время + IANA-зона → UTC → юлианский день →
// долготы десяти тел → асцендент по Плацидусу.
// Любая ошибка фатальна для раунда, частичная карта не возвращается.
func (s *Service) Compute(ctx context.Context, coords domain.Coordinates, date time.Time, dayTime domain.DayTime, timezone string) (*domain.Chart, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("неизвестный часовой пояс %q: %w", timezone, err)
	}

	local := time.Date(date.Year(), date.Month(), date.Day(), dayTime.Hour, dayTime.Minute, 0, 0, loc)
	utc := local.UTC()
	jd := JulianDayUT(utc)

	positions := make(map[domain.Body]float64, len(domain.Bodies))
	for _, body := range domain.Bodies {
		longitude, err := s.Ephemeris.BodyLongitude(ctx, jd, body)
		if err != nil {
			return nil, fmt.Errorf("не удалось получить позицию %s: %w", body, err)
		}
		positions[body] = longitude
	}

	houses, err := s.Ephemeris.Houses(ctx, jd, coords.Lat, coords.Lon)
	if err != nil {
		return nil, fmt.Errorf("не удалось рассчитать дома: %w", err)
	}

	s.Log.Debug("chart computed",
		"utc", utc.Format(time.RFC3339),
		"julian_day", jd,
		"lat", coords.Lat,
		"lon", coords.Lon,
	)

	return &domain.Chart{
		UTC:       utc,
		JulianDay: jd,
		Positions: positions,
		Ascendant: houses.Ascendant,
	}, nil
}

package natal

import (
	"context"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	chartService "github.com/admin/tg-bots/natal-bot/internal/services/chart"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
	"github.com/google/uuid"
)

// runFreeformRound выполняет один раунд вопроса по карте:
// геокодинг → расчёт карты → генерация ответа → возврат к выбору темы.
// Координаты пересчитываются каждый раунд: геокодинг может падать независимо
// от уже собранных данных.
func (s *Service) runFreeformRound(ctx context.Context, sess *domain.Session, question string, updateID int64) error {
	chatID := sess.ChatID

	if s.Generator == nil {
		return s.sendMessage(ctx, chatID, texts.GenerationNotConfigured)
	}

	d := &sess.Data
	if d.Date == nil || d.Time == nil || d.City == nil || d.Timezone == nil {
		// сюда нельзя попасть без пройденных шагов сбора
		s.Log.Error("freeform round with incomplete birth data",
			"chat_id", chatID,
			"state", sess.State,
		)
		return s.sendMessage(ctx, chatID, texts.Lost)
	}

	coords := s.geocode(ctx, *d.City, d.Country)
	if coords == nil {
		// место не нашлось - возвращаемся к вводу города,
		// дата/время/пояс остаются
		sess.State = domain.StateAskCity
		s.saveSession(ctx, sess)
		return s.sendMessage(ctx, chatID, texts.GeocodeMiss)
	}

	d.Coords = coords
	s.saveSession(ctx, sess)

	chart, err := s.ChartService.Compute(ctx, *coords, *d.Date, *d.Time, *d.Timezone)
	if err != nil {
		s.Log.Error("failed to compute chart",
			"error", err,
			"chat_id", chatID,
			"update_id", updateID,
		)
		// фатально для раунда, состояние не меняем - пользователь решает сам
		// (/reset или повторить вопрос)
		return s.sendMessage(ctx, chatID, texts.FormatChartError(err))
	}

	topicLabel := "общая тема"
	if d.Topic != nil {
		topicLabel = d.Topic.Label()
	}

	systemPrompt := texts.FormatSystemPrompt(chartService.RenderText(chart), topicLabel, question)

	answer, err := s.Generator.Generate(ctx, systemPrompt, question)
	if err != nil {
		s.Log.Error("failed to generate answer",
			"error", err,
			"chat_id", chatID,
			"update_id", updateID,
		)
		answer = ""
	}
	if answer == "" {
		answer = texts.GenerationFallback
	}

	if err := s.sendMessage(ctx, chatID, answer); err != nil {
		return err
	}

	s.recordRound(ctx, chatID, d.Topic, question, answer)

	// раунд закрыт - предлагаем следующий вопрос по той же карте
	sess.State = domain.StateAskTopic
	s.saveSession(ctx, sess)

	return s.sendMessageWithKeyboard(ctx, chatID, texts.NextTopic, topicKeyboard())
}

// geocode ищет координаты: сначала "город, страна", затем только город
func (s *Service) geocode(ctx context.Context, city string, country *string) *domain.Coordinates {
	if country != nil && *country != "" {
		query := city + ", " + *country
		coords, found, err := s.Geocoder.Search(ctx, query)
		if err != nil {
			s.Log.Warn("geocoder request failed",
				"error", err,
				"query", query,
			)
		} else if found {
			return coords
		}
	}

	coords, found, err := s.Geocoder.Search(ctx, city)
	if err != nil {
		s.Log.Warn("geocoder request failed",
			"error", err,
			"query", city,
		)
		return nil
	}
	if !found {
		return nil
	}

	return coords
}

// recordRound пишет отвеченный раунд в журнал; ошибки только логируются
func (s *Service) recordRound(ctx context.Context, chatID int64, topic *domain.Topic, question, answer string) {
	if s.HistoryRepo == nil {
		return
	}

	roundTopic := domain.TopicGeneral
	if topic != nil {
		roundTopic = *topic
	}

	round := &domain.Round{
		ID:        uuid.New(),
		ChatID:    chatID,
		Topic:     roundTopic,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
	}

	if err := s.HistoryRepo.Create(ctx, round); err != nil {
		s.Log.Warn("failed to record round",
			"error", err,
			"chat_id", chatID,
			"round_id", round.ID,
		)
	}
}

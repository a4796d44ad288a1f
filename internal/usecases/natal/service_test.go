package natal

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	sessionRepo "github.com/admin/tg-bots/natal-bot/internal/repository/session"
	"github.com/admin/tg-bots/natal-bot/internal/usecases/natal/texts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- фейки портов ---

type sentMessage struct {
	chatID   int64
	text     string
	keyboard bool
}

type fakeClient struct {
	sent []sentMessage
}

func (f *fakeClient) SendMessage(_ context.Context, chatID int64, text string) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeClient) SendMessageWithKeyboard(_ context.Context, chatID int64, text string, _ domain.InlineKeyboard) error {
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, keyboard: true})
	return nil
}

func (f *fakeClient) AnswerCallbackQuery(_ context.Context, _ string) error {
	return nil
}

func (f *fakeClient) last(t *testing.T) sentMessage {
	t.Helper()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

type fakeGeocoder struct {
	coords  map[string]domain.Coordinates
	err     error
	queries []string
}

func (f *fakeGeocoder) Search(_ context.Context, query string) (*domain.Coordinates, bool, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, false, f.err
	}
	if c, ok := f.coords[query]; ok {
		return &c, true, nil
	}
	return nil, false, nil
}

type fakeChartService struct {
	chart *domain.Chart
	err   error
	calls int
}

func (f *fakeChartService) Compute(_ context.Context, _ domain.Coordinates, _ time.Time, _ domain.DayTime, _ string) (*domain.Chart, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.chart, nil
}

type fakeGenerator struct {
	answer     string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeGenerator) Generate(_ context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeHistoryRepo struct {
	rounds []domain.Round
	err    error
}

func (f *fakeHistoryRepo) Create(_ context.Context, round *domain.Round) error {
	if f.err != nil {
		return f.err
	}
	f.rounds = append(f.rounds, *round)
	return nil
}

func (f *fakeHistoryRepo) ListByChat(_ context.Context, chatID int64, _ int) ([]domain.Round, error) {
	var out []domain.Round
	for _, r := range f.rounds {
		if r.ChatID == chatID {
			out = append(out, r)
		}
	}
	return out, nil
}

// --- сборка тестового сервиса ---

type testEnv struct {
	svc       *Service
	client    *fakeClient
	geocoder  *fakeGeocoder
	charts    *fakeChartService
	generator *fakeGenerator
	history   *fakeHistoryRepo
}

func testChart() *domain.Chart {
	positions := make(map[domain.Body]float64, len(domain.Bodies))
	for i, body := range domain.Bodies {
		positions[body] = float64(i) * 30
	}
	return &domain.Chart{
		UTC:       time.Date(1990, 1, 1, 12, 0, 0, 0, time.UTC),
		JulianDay: 2447893.0,
		Positions: positions,
		Ascendant: 15.0,
	}
}

func newTestEnv() *testEnv {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	env := &testEnv{
		client: &fakeClient{},
		geocoder: &fakeGeocoder{coords: map[string]domain.Coordinates{
			"London, UK": {Lat: 51.5074, Lon: -0.1278},
			"London":     {Lat: 51.5074, Lon: -0.1278},
		}},
		charts:    &fakeChartService{chart: testChart()},
		generator: &fakeGenerator{answer: "Разбор готов 🙂"},
		history:   &fakeHistoryRepo{},
	}

	env.svc = New(
		sessionRepo.NewInMemoryStore(log),
		env.history,
		env.client,
		env.charts,
		env.geocoder,
		env.generator,
		log,
	)

	return env
}

// прогоняет чат до состояния ASK_FREEFORM с полными данными
func (e *testEnv) collectBirthData(t *testing.T, chatID int64) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, e.svc.HandleCommand(ctx, chatID, "start", 1))
	require.NoError(t, e.svc.HandleText(ctx, chatID, "1990-01-01", 2))
	require.NoError(t, e.svc.HandleText(ctx, chatID, "12:00", 3))
	require.NoError(t, e.svc.HandleText(ctx, chatID, "London, UK", 4))
	require.NoError(t, e.svc.HandleText(ctx, chatID, "Europe/London", 5))
	require.NoError(t, e.svc.HandleCallback(ctx, chatID, "topic:relationships", 6))

	sess, created, err := e.svc.Sessions.GetOrCreate(ctx, chatID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, domain.StateAskFreeform, sess.State)
}

// --- тесты ---

func TestFirstContactPromptsWithoutConsuming(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleText(ctx, 10, "1990-01-01", 1))

	// первое сообщение не считается вводом даты
	assert.Equal(t, texts.FirstContact, env.client.last(t).text)

	sess, created, err := env.svc.Sessions.GetOrCreate(ctx, 10)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, domain.StateAskDate, sess.State)
	assert.Nil(t, sess.Data.Date)

	// то же сообщение во второй раз уже принимается
	require.NoError(t, env.svc.HandleText(ctx, 10, "1990-01-01", 2))
	assert.Equal(t, domain.StateAskTime, sess.State)
}

func TestHappyPathTwoTokenPlace(t *testing.T) {
	env := newTestEnv()
	env.collectBirthData(t, 10)

	// "город, страна" одним сообщением: ровно пять принятых шагов до вопроса
	assert.Equal(t, texts.AskQuestion, env.client.last(t).text)
}

func TestSeparateCountryStep(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCommand(ctx, 11, "start", 1))
	require.NoError(t, env.svc.HandleText(ctx, 11, "1990-01-01", 2))
	require.NoError(t, env.svc.HandleText(ctx, 11, "12:00", 3))
	require.NoError(t, env.svc.HandleText(ctx, 11, "London", 4))

	assert.Equal(t, texts.AskCountry, env.client.last(t).text)

	require.NoError(t, env.svc.HandleText(ctx, 11, "UK", 5))
	assert.Equal(t, texts.AskTimezone, env.client.last(t).text)
}

func TestResetFromAnyState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 12)

	require.NoError(t, env.svc.HandleCommand(ctx, 12, "reset", 7))

	assert.Equal(t, texts.ResetDone, env.client.last(t).text)

	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskDate, sess.State)
	assert.Nil(t, sess.Data.Date)
	assert.Nil(t, sess.Data.Topic)
}

func TestUnknownCommand(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.svc.HandleCommand(context.Background(), 13, "weather", 1))

	assert.Equal(t, texts.FormatUnknownCommand("weather"), env.client.last(t).text)
}

func TestInvalidDateKeepsState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCommand(ctx, 14, "start", 1))
	require.NoError(t, env.svc.HandleText(ctx, 14, "когда-то давно", 2))

	assert.Equal(t, texts.DateInvalid, env.client.last(t).text)

	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 14)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskDate, sess.State)
}

func TestTopicKeyboardResentOnText(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCommand(ctx, 15, "start", 1))
	require.NoError(t, env.svc.HandleText(ctx, 15, "1990-01-01", 2))
	require.NoError(t, env.svc.HandleText(ctx, 15, "12:00", 3))
	require.NoError(t, env.svc.HandleText(ctx, 15, "London, UK", 4))
	require.NoError(t, env.svc.HandleText(ctx, 15, "Europe/London", 5))

	last := env.client.last(t)
	assert.Equal(t, texts.AskTopic, last.text)
	assert.True(t, last.keyboard)

	// текст вместо кнопки: клавиатура повторяется, состояние не меняется
	require.NoError(t, env.svc.HandleText(ctx, 15, "деньги", 6))
	last = env.client.last(t)
	assert.Equal(t, texts.AskTopic, last.text)
	assert.True(t, last.keyboard)
}

func TestCallbackSelectsTopic(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCommand(ctx, 16, "start", 1))
	require.NoError(t, env.svc.HandleCallback(ctx, 16, "topic:career", 2))

	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 16)
	require.NoError(t, err)
	require.NotNil(t, sess.Data.Topic)
	assert.Equal(t, domain.TopicCareer, *sess.Data.Topic)
	assert.Equal(t, domain.StateAskFreeform, sess.State)
	assert.Equal(t, texts.AskQuestion, env.client.last(t).text)
}

func TestCallbackUnknownDataIgnored(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCallback(ctx, 17, "page:2", 1))
	require.NoError(t, env.svc.HandleCallback(ctx, 17, "topic:astrology", 2))

	assert.Empty(t, env.client.sent)
}

func TestFreeformRoundSuccess(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 20)

	require.NoError(t, env.svc.HandleText(ctx, 20, "куда расти в карьере?", 7))

	require.GreaterOrEqual(t, len(env.client.sent), 2)
	answer := env.client.sent[len(env.client.sent)-2]
	next := env.client.last(t)

	assert.Equal(t, "Разбор готов 🙂", answer.text)
	assert.Equal(t, texts.NextTopic, next.text)
	assert.True(t, next.keyboard)

	// системный промпт собран из сводки карты, темы и вопроса
	assert.Contains(t, env.generator.lastSystem, "Ascendant:")
	assert.Contains(t, env.generator.lastSystem, "отношения")
	assert.Contains(t, env.generator.lastSystem, "куда расти в карьере?")
	assert.Equal(t, "куда расти в карьере?", env.generator.lastUser)

	// раунд закрыт, следующий вопрос начинается с выбора темы
	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskTopic, sess.State)
	require.NotNil(t, sess.Data.Coords)

	// раунд записан в журнал
	require.Len(t, env.history.rounds, 1)
	round := env.history.rounds[0]
	assert.Equal(t, int64(20), round.ChatID)
	assert.Equal(t, domain.TopicRelationships, round.Topic)
	assert.Equal(t, "куда расти в карьере?", round.Question)
	assert.Equal(t, "Разбор готов 🙂", round.Answer)
}

func TestFreeformGeocodeMissRegressesToCity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 21)

	// место перестало находиться
	env.geocoder.coords = map[string]domain.Coordinates{}

	require.NoError(t, env.svc.HandleText(ctx, 21, "что меня ждёт?", 7))

	assert.Equal(t, texts.GeocodeMiss, env.client.last(t).text)

	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskCity, sess.State)

	// дата, время и пояс сохранены
	assert.NotNil(t, sess.Data.Date)
	assert.NotNil(t, sess.Data.Time)
	assert.NotNil(t, sess.Data.Timezone)

	assert.Zero(t, env.charts.calls)
	assert.Empty(t, env.history.rounds)
}

func TestFreeformGeocodeFallbackToCityOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 22)

	// "город, страна" не находится, голый город находится
	env.geocoder.coords = map[string]domain.Coordinates{
		"London": {Lat: 51.5074, Lon: -0.1278},
	}
	env.geocoder.queries = nil

	require.NoError(t, env.svc.HandleText(ctx, 22, "вопрос", 7))

	assert.Equal(t, []string{"London, UK", "London"}, env.geocoder.queries)
	assert.Equal(t, 1, env.charts.calls)
}

func TestFreeformChartErrorKeepsState(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 23)

	env.charts.err = errors.New("эфемериды недоступны")

	require.NoError(t, env.svc.HandleText(ctx, 23, "вопрос", 7))

	last := env.client.last(t)
	assert.True(t, strings.HasPrefix(last.text, "Ошибка расчёта карты"), last.text)
	assert.Contains(t, last.text, "эфемериды недоступны")

	// состояние не меняется, пользователь может повторить вопрос
	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 23)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskFreeform, sess.State)
	assert.Empty(t, env.history.rounds)
}

func TestFreeformGeneratorNotConfigured(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 24)

	env.svc.Generator = nil

	require.NoError(t, env.svc.HandleText(ctx, 24, "вопрос", 7))

	assert.Equal(t, texts.GenerationNotConfigured, env.client.last(t).text)

	sess, _, err := env.svc.Sessions.GetOrCreate(ctx, 24)
	require.NoError(t, err)
	assert.Equal(t, domain.StateAskFreeform, sess.State)
}

func TestFreeformGenerationFallback(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 25)

	env.generator.err = errors.New("rate limited")

	require.NoError(t, env.svc.HandleText(ctx, 25, "вопрос", 7))

	// раунд закрывается заглушкой, а не ошибкой
	answer := env.client.sent[len(env.client.sent)-2]
	assert.Equal(t, texts.GenerationFallback, answer.text)
	assert.Equal(t, texts.NextTopic, env.client.last(t).text)
}

func TestEmptyTextPrompt(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.svc.HandleCommand(ctx, 26, "start", 1))
	require.NoError(t, env.svc.HandleText(ctx, 26, "   ", 2))

	assert.Equal(t, texts.EmptyText, env.client.last(t).text)
}

func TestHistoryCommandListsRounds(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 28)

	require.NoError(t, env.svc.HandleText(ctx, 28, "куда расти в карьере?", 7))
	require.NoError(t, env.svc.HandleCommand(ctx, 28, "history", 8))

	last := env.client.last(t)
	assert.Contains(t, last.text, texts.HistoryHeader)
	assert.Contains(t, last.text, "[отношения]")
	assert.Contains(t, last.text, "куда расти в карьере?")
}

func TestHistoryCommandEmpty(t *testing.T) {
	env := newTestEnv()

	require.NoError(t, env.svc.HandleCommand(context.Background(), 29, "history", 1))

	assert.Equal(t, texts.HistoryEmpty, env.client.last(t).text)
}

func TestHistoryCommandUnavailable(t *testing.T) {
	env := newTestEnv()
	env.svc.HistoryRepo = nil

	require.NoError(t, env.svc.HandleCommand(context.Background(), 30, "history", 1))

	assert.Equal(t, texts.HistoryUnavailable, env.client.last(t).text)
}

func TestHistoryDisabled(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.collectBirthData(t, 27)

	env.svc.HistoryRepo = nil

	require.NoError(t, env.svc.HandleText(ctx, 27, "вопрос", 7))

	assert.Equal(t, texts.NextTopic, env.client.last(t).text)
}

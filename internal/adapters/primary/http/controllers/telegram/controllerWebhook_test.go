package telegram

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	telegramService "github.com/admin/tg-bots/natal-bot/internal/services/telegram"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-token"

type recordingBot struct {
	commands []string
	texts    []string
}

func (b *recordingBot) HandleCommand(_ context.Context, _ int64, command string, _ int64) error {
	b.commands = append(b.commands, command)
	return nil
}

func (b *recordingBot) HandleText(_ context.Context, _ int64, text string, _ int64) error {
	b.texts = append(b.texts, text)
	return nil
}

func (b *recordingBot) HandleCallback(_ context.Context, _ int64, _ string, _ int64) error {
	return nil
}

type noopClient struct{}

func (noopClient) SendMessage(_ context.Context, _ int64, _ string) error { return nil }

func (noopClient) SendMessageWithKeyboard(_ context.Context, _ int64, _ string, _ domain.InlineKeyboard) error {
	return nil
}

func (noopClient) AnswerCallbackQuery(_ context.Context, _ string) error { return nil }

func newTestRouter() (*gin.Engine, *recordingBot) {
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := &recordingBot{}
	tgService := telegramService.New(bot, noopClient{}, log)

	router := gin.New()
	New(tgService, testSecret, log).RegisterRoutes(router)

	return router, bot
}

func postWebhook(router *gin.Engine, secret, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("X-Telegram-Bot-Api-Secret-Token", secret)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookRejectsInvalidSecret(t *testing.T) {
	router, bot := newTestRouter()

	w := postWebhook(router, "wrong-secret", `{"update_id":1}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, bot.commands)
	assert.Empty(t, bot.texts)
}

func TestWebhookRejectsMissingSecret(t *testing.T) {
	router, _ := newTestRouter()

	w := postWebhook(router, "", `{"update_id":1}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	w := postWebhook(router, testSecret, `{"update_id":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRoutesMessage(t *testing.T) {
	router, bot := newTestRouter()

	body := `{
		"update_id": 100,
		"message": {
			"message_id": 1,
			"from": {"id": 42, "is_bot": false, "first_name": "Test"},
			"chat": {"id": 42, "type": "private"},
			"text": "/start"
		}
	}`

	w := postWebhook(router, testSecret, body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"start"}, bot.commands)
}

func TestWebhookAlwaysOKOnHandlerError(t *testing.T) {
	router, _ := newTestRouter()

	// обновление без сообщения и callback - обрабатывается как no-op
	w := postWebhook(router, testSecret, `{"update_id":7}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

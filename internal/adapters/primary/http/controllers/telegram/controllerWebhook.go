package telegram

import (
	"crypto/subtle"
	"net/http"

	"log/slog"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
	telegramService "github.com/admin/tg-bots/natal-bot/internal/services/telegram"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	TgService     *telegramService.Service
	WebhookSecret string
	Log           *slog.Logger
}

func New(tgService *telegramService.Service, webhookSecret string, log *slog.Logger) *Controller {
	return &Controller{
		TgService:     tgService,
		WebhookSecret: webhookSecret,
		Log:           log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook", c.handleWebhook)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	secretToken := ctx.GetHeader("X-Telegram-Bot-Api-Secret-Token")
	if subtle.ConstantTimeCompare([]byte(secretToken), []byte(c.WebhookSecret)) != 1 {
		c.Log.Warn("webhook with invalid secret token")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}

	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.Log.Debug("received webhook update",
		"update_id", update.UpdateID,
	)

	if err := c.TgService.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		// Отвечаем 200 в любом случае, чтобы Telegram не доставлял
		// обновление повторно
		if domain.IsBusinessError(err) {
			// ошибка уже залогирована в UseCase
			c.Log.Debug("update handled with business error",
				"error", err,
				"update_id", update.UpdateID,
			)
		} else {
			c.Log.Error("failed to handle update",
				"error", err,
				"update_id", update.UpdateID,
			)
		}
	}

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

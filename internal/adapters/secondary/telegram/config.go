package telegram

// Config конфигурация Telegram-бота
type Config struct {
	Token         string `envconfig:"TOKEN" required:"true"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET" required:"true"`
	PublicURL     string `envconfig:"PUBLIC_URL"` // внешний URL для регистрации вебхука, пусто = не регистрируем
}

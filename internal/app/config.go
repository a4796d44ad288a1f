package app

import (
	server "github.com/admin/tg-bots/natal-bot/internal/adapters/primary/http"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/ephemeris"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/nominatim"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/openai"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/pg"
	redisStorage "github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/natal-bot/internal/adapters/secondary/telegram"
	"github.com/admin/tg-bots/natal-bot/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log       *logger.Config       `envconfig:"LOG"`
	Server    *server.Config       `envconfig:"APISERVER"`
	Telegram  *telegram.Config     `envconfig:"TELEGRAM"`
	Ephemeris *ephemeris.Config    `envconfig:"EPHEMERIS"`
	Nominatim *nominatim.Config    `envconfig:"NOMINATIM"`
	OpenAI    *openai.Config       `envconfig:"OPENAI"`
	Postgres  *pg.Config           `envconfig:"POSTGRES"`
	Redis     *redisStorage.Config `envconfig:"REDIS"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

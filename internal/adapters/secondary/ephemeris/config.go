package ephemeris

type Config struct {
	BaseURL    string `envconfig:"BASE_URL" required:"true"`
	ApiVersion string `envconfig:"VERSION" default:"v1"`
	ApiKey     string `envconfig:"API_KEY"`
}

package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const apiTimeout = 30 * time.Second

type Config struct {
	BaseURL   string `envconfig:"BASE_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent string `envconfig:"USER_AGENT" default:"natal-bot/1.0 (contact: example@example.com)"`
}

// Client - клиент геокодинга через OSM Nominatim
type Client struct {
	cfg        *Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		log: log,
	}
}

// searchResult элемент ответа Nominatim (lat/lon приходят строками)
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search ищет координаты по строке запроса.
// Пустой результат - это "не найдено", не ошибка.
func (c *Client) Search(ctx context.Context, query string) (*domain.Coordinates, bool, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := c.cfg.BaseURL + "/search?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	// Nominatim требует осмысленный User-Agent
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, false, fmt.Errorf("failed to send request to nominatim: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("nominatim error [status=%d]", resp.StatusCode)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal nominatim response: %w", err)
	}

	if len(results) == 0 {
		c.log.Debug("nominatim returned no results", "query", query)
		return nil, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}

	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	c.log.Debug("nominatim resolved query",
		"query", query,
		"lat", lat,
		"lon", lon,
	)

	return &domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

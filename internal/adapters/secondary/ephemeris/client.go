package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/admin/tg-bots/natal-bot/internal/domain"
)

const (
	getPosition = "data/position"
	getHouses   = "data/houses"

	apiTimeout = 30 * time.Second
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с эфемеридным API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент эфемеридного API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: apiTimeout,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// BodyLongitude возвращает геоцентрическую тропическую эклиптическую долготу тела
func (c *Client) BodyLongitude(ctx context.Context, jd float64, body domain.Body) (float64, error) {
	req := PositionRequest{
		JulianDay: jd,
		Body:      string(body),
		Zodiac:    "tropical",
	}

	var resp PositionResponse
	if err := c.post(ctx, getPosition, req, &resp); err != nil {
		return 0, fmt.Errorf("failed to get position for %s: %w", body, err)
	}

	return resp.Longitude, nil
}

// Houses возвращает углы домов по Плацидусу
func (c *Client) Houses(ctx context.Context, jd float64, lat, lon float64) (*domain.Houses, error) {
	req := HousesRequest{
		JulianDay:   jd,
		Latitude:    lat,
		Longitude:   lon,
		HouseSystem: "P",
	}

	var resp HousesResponse
	if err := c.post(ctx, getHouses, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to get houses: %w", err)
	}

	return &domain.Houses{
		Ascendant: resp.Ascendant,
		Midheaven: resp.Midheaven,
	}, nil
}

// post выполняет POST-запрос к API и разбирает JSON-ответ
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}, dest interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Ошибка внешнего API - Debug
		c.Log.Debug("ephemeris API returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("ephemeris API error [status=%d]: %s", resp.StatusCode, truncateString(string(body), 500))
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.Log.Debug("failed to unmarshal ephemeris API response",
			"endpoint", endpoint,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("ephemeris API unmarshal failed: %w", err)
	}

	return nil
}

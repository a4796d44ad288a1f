package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultModel           = "gpt-4.1-mini"
	defaultMaxOutputTokens = 450

	apiTimeout = 45 * time.Second
)

type Config struct {
	ApiKey          string `envconfig:"API_KEY"` // пусто = генерация не настроена
	BaseURL         string `envconfig:"BASE_URL" default:"https://api.openai.com/v1"`
	Model           string `envconfig:"MODEL" default:"gpt-4.1-mini"`
	MaxOutputTokens int    `envconfig:"MAX_OUTPUT_TOKENS" default:"450"`
}

// IsConfigured сообщает, задан ли API-ключ
func (c *Config) IsConfigured() bool {
	return c != nil && c.ApiKey != ""
}

// Client - клиент OpenAI Responses API
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

type inputMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responsesRequest struct {
	Model           string         `json:"model"`
	Input           []inputMessage `json:"input"`
	MaxOutputTokens int            `json:"max_output_tokens"`
}

type responsesResponse struct {
	Output []struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
}

// Generate отправляет системный промпт и вопрос пользователя, возвращает текст ответа.
// Части output_text склеиваются переводами строк.
func (c *Client) Generate(ctx context.Context, systemPrompt string, userText string) (string, error) {
	model := c.cfg.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := c.cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxOutputTokens
	}

	req := responsesRequest{
		Model: model,
		Input: []inputMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		MaxOutputTokens: maxTokens,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/responses"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request to openai: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("openai returned non-200 status",
			"status_code", resp.StatusCode,
		)
		return "", fmt.Errorf("openai error [status=%d]", resp.StatusCode)
	}

	var genResp responsesResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal openai response: %w", err)
	}

	var parts []string
	for _, item := range genResp.Output {
		for _, content := range item.Content {
			if content.Type == "output_text" && content.Text != "" {
				parts = append(parts, content.Text)
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Generative Language API (генерация маркетинговых описаний вилл)
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
// Пустой apiKey - валидное состояние: генерация отключена, все вызовы
// возвращают ErrNotConfigured
func NewClient(baseURL, model, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// IsConfigured возвращает true, если клиенту задан API-ключ
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// GenerateDescription генерирует рекламное описание виллы
// name - название виллы, location - локация, features - ключевые особенности
func (c *Client) GenerateDescription(ctx context.Context, name, location, features string) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(
		"Write a captivating, luxury real-estate description (max 100 words) for a villa named %q located in %s.\n"+
			"Key features: %s.\n"+
			"Tone: Relaxing, inviting, premium.",
		name, location, features,
	)

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", ErrInvalidResponse)
	}

	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty generated text", ErrInvalidResponse)
	}

	c.log.Info("GenerateDescription: generated %d chars for villa %q", len(text), name)
	return text, nil
}

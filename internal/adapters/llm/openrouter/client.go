package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

const emptyReadingFallback = "Không thể tạo kết quả bói bài lúc này."

const systemPrompt = "Bạn là một nhà đọc bài Tarot chuyên nghiệp và giàu kinh nghiệm. " +
	"Hãy đưa ra lời giải thích sâu sắc, thông thái và đầy cảm hứng cho người tìm hiểu."

// Client implements ports.Generator via any OpenAI-compatible
// chat-completions API (OpenRouter, OpenAI).
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}, nil
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		text, err := c.generateWithModel(ctx, model, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}

	return "", lastErr
}

func (c *Client) generateWithModel(ctx context.Context, model, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1500,
		Temperature: 0.8,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "llm call failed", "model", model, "error", err)
		return "", domain.ErrGenerationUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "llm response unreadable", "model", model, "error", err)
		return "", domain.ErrGenerationUnavailable
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "llm upstream error",
			"model", model, "status", resp.StatusCode, "body", string(respBody))
		return "", fmt.Errorf("%w: upstream status %d", domain.ErrGenerationUnavailable, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		c.logger.ErrorContext(ctx, "llm response undecodable", "model", model, "error", err)
		return "", domain.ErrGenerationUnavailable
	}

	if len(chatResp.Choices) == 0 {
		return emptyReadingFallback, nil
	}

	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return emptyReadingFallback, nil
	}
	return text, nil
}

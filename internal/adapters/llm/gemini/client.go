package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/trungthanhnguyenn/tarot-reader-go/internal/domain"
)

// emptyReadingFallback is returned when the model answers successfully but
// with no text.
const emptyReadingFallback = "Không thể tạo kết quả bói bài lúc này."

// Client implements ports.Generator via the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewClient fails without an API key so a misconfigured deployment dies at
// startup instead of on the first request.
func NewClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, model: model, logger: logger}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		// Backend detail stays in the log; callers only see the sentinel.
		c.logger.ErrorContext(ctx, "gemini call failed", "model", c.model, "error", err)
		return "", domain.ErrGenerationUnavailable
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return emptyReadingFallback, nil
	}
	return text, nil
}

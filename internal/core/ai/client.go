package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nutrismart/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// Client talks to the OpenRouter chat-completions API.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates an OpenRouter client.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenRouter.BaseURL).
		SetTimeout(cfg.OpenRouter.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.OpenRouter.APIKey)).
		SetHeader("HTTP-Referer", "https://nutrismart.app").
		SetHeader("X-Title", "NutriSmart")

	return &Client{
		config: cfg,
		client: client,
	}
}

// GenerateText sends a single-turn prompt and returns the model's reply.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	// Collapse whitespace so identical prompts hash to identical cache keys.
	simplePrompt := strings.Join(strings.Fields(strings.TrimSpace(prompt)), " ")

	req := map[string]interface{}{
		"model": c.config.OpenRouter.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": simplePrompt,
			},
		},
		"max_tokens": c.config.OpenRouter.MaxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned error: %s", resp.String())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}

	return result.Choices[0].Message.Content, nil
}

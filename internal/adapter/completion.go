package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/utils"
)

const (
	messagesPath     = "/v1/messages"
	anthropicVersion = "2023-06-01"
)

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

type messagesError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// completionAdapter calls the Anthropic Messages API.
type completionAdapter struct {
	client *utils.HTTPClient
	cfg    config.LLM
	logger *logger.Logger
}

// NewCompletionAdapter builds a [CompletionAdapter] from the LLM settings.
// An adapter without API key is still returned; its calls fail with
// [ErrProviderNotConfigured].
func NewCompletionAdapter(cfg config.LLM, logger *logger.Logger) CompletionAdapter {
	client := utils.NewHTTPClient(
		utils.WithBaseURL(strings.TrimRight(cfg.URL, "/")),
		utils.WithTimeout(cfg.Timeout),
		utils.WithHeader("Content-Type", "application/json"),
		utils.WithHeader("anthropic-version", anthropicVersion),
	)
	if cfg.APIKey != "" {
		client.SetHeader("x-api-key", cfg.APIKey)
	}

	return &completionAdapter{client: client, cfg: cfg, logger: logger}
}

// Complete sends req.Prompt as a single user message and returns the text
// of the first content block.
func (a *completionAdapter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := logger.FromContext(ctx)

	if a.cfg.APIKey == "" || a.cfg.URL == "" {
		return "", ErrProviderNotConfigured
	}

	maxTokens := a.cfg.MaxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	var result messagesResponse
	var apiErr messagesError
	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(messagesRequest{
			Model:       a.cfg.Model,
			MaxTokens:   maxTokens,
			Temperature: a.cfg.Temperature,
			Messages:    []message{{Role: "user", Content: req.Prompt}},
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(messagesPath)
	if err != nil {
		log.Err(err).Str("func", "*completionAdapter.Complete").Msg("completion request failed")
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if resp.IsError() {
		detail := apiErr.Error.Message
		if detail == "" {
			detail = resp.Status()
		}
		log.Error().Str("func", "*completionAdapter.Complete").Int("status", resp.StatusCode()).Str("detail", detail).Msg("completion provider returned an error")
		return "", fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode(), detail)
	}

	for _, block := range result.Content {
		if block.Type == "" || block.Type == "text" {
			if text := strings.TrimSpace(block.Text); text != "" {
				return block.Text, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %w", ErrProvider, ErrEmptyCompletion)
}

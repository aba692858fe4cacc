// Package llm implements the external text generation service on an OpenAI-compatible API.
package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"learnhub/config"
	"learnhub/internal/domain/service"
	"learnhub/internal/errors"
)

type openAIGenerator struct {
	client *openai.Client
	logger *slog.Logger
}

// NewOpenAIGenerator creates the text generator. It returns nil when no API key is
// configured, which callers treat as "generation unavailable".
func NewOpenAIGenerator(cfg *config.Config, logger *slog.Logger) (service.TextGenerator, error) {
	if cfg.LessonGenerator == nil || cfg.LessonGenerator.APIKey == "" {
		logger.Info("Lesson generator API key not configured, lessons will use the built-in template")

		return nil, nil
	}

	clientCfg := openai.DefaultConfig(cfg.LessonGenerator.APIKey)
	if cfg.LessonGenerator.BaseURL != "" {
		clientCfg.BaseURL = cfg.LessonGenerator.BaseURL
	}

	return &openAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger,
	}, nil
}

// Generate sends one chat completion and returns the first choice.
func (g *openAIGenerator) Generate(ctx context.Context, req service.GenerationRequest) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		MaxTokens:   req.MaxOutputTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			g.logger.DebugContext(ctx, "Completion request rejected",
				slog.Int("status", apiErr.HTTPStatusCode),
				slog.Any("code", apiErr.Code),
			)
		}

		return "", errors.Wrap(errors.Join(service.ErrGenerationFailed, err), "create chat completion")
	}

	if len(resp.Choices) == 0 {
		return "", errors.WithStack(service.ErrEmptyCompletion)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.WithStack(service.ErrEmptyCompletion)
	}

	return content, nil
}

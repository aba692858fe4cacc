package service

import (
	"context"

	"learnhub/internal/errors"
)

var (
	// ErrGenerationFailed wraps any failure of the external generation service.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrEmptyCompletion is returned when the service answered without any text.
	ErrEmptyCompletion = errors.New("text generation returned no content")
)

// GenerationRequest is a single completion request.
type GenerationRequest struct {
	SystemInstruction string
	UserPrompt        string
	MaxOutputTokens   int
	Temperature       float32
	Model             string
}

// TextGenerator calls an external large-language-model service.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

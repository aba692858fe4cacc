package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"learnhub/config"
	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/service"
	"learnhub/internal/errors"
	"learnhub/internal/usecase"
)

const (
	lessonSystemInstruction = "You are an educational assistant that writes structured lessons for self-learners. " +
		"Organize every lesson into clear sections, explain the key concepts, include concrete examples " +
		"and close with key takeaways."
	lessonTaskPrefix = "Create a detailed lesson about: "

	defaultLessonModel       = "gpt-4o-mini"
	defaultLessonMaxTokens   = 1000
	defaultLessonTemperature = 0.7
	defaultLessonTimeout     = 30 * time.Second
)

// lessonGenerator implements usecase.LessonGenerator on top of an optional TextGenerator.
type lessonGenerator struct {
	textGen     service.TextGenerator
	model       string
	maxTokens   int
	temperature float32
	timeout     time.Duration
	logger      *slog.Logger
}

// LessonGeneratorParams holds dependencies for LessonGenerator, injected by Fx.
// TextGenerator is nil when no API key is configured.
type LessonGeneratorParams struct {
	fx.In

	TextGenerator service.TextGenerator `optional:"true"`
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLessonGenerator is the constructor for lessonGenerator.
func NewLessonGenerator(params LessonGeneratorParams) usecase.LessonGenerator {
	gen := &lessonGenerator{
		textGen:     params.TextGenerator,
		model:       defaultLessonModel,
		maxTokens:   defaultLessonMaxTokens,
		temperature: defaultLessonTemperature,
		timeout:     defaultLessonTimeout,
		logger:      params.Logger,
	}

	if cfg := params.Config.LessonGenerator; cfg != nil {
		if cfg.Model != "" {
			gen.model = cfg.Model
		}
		if cfg.MaxTokens > 0 {
			gen.maxTokens = cfg.MaxTokens
		}
		if cfg.Temperature > 0 {
			gen.temperature = cfg.Temperature
		}
		if cfg.Timeout > 0 {
			gen.timeout = cfg.Timeout
		}
	}

	return gen
}

func (g *lessonGenerator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, g.logger)
}

// GenerateLesson returns generated lesson text, or the template lesson when the
// external service is not configured or fails in any way.
func (g *lessonGenerator) GenerateLesson(ctx context.Context, prompt string) string {
	if g.textGen == nil {
		g.log(ctx).Debug("Lesson generator not configured, using template")

		return fallbackLesson(prompt)
	}

	start := time.Now()
	text, err := g.generate(ctx, prompt)
	if err != nil {
		g.log(ctx).Warn("Lesson generation failed, using template",
			slog.Any("error", err),
			slog.Int("prompt_length", len(prompt)),
			slog.Duration("elapsed", time.Since(start)),
		)

		return fallbackLesson(prompt)
	}

	g.log(ctx).Debug("Lesson generated",
		slog.String("model", g.model),
		slog.Duration("elapsed", time.Since(start)),
	)

	return text
}

// generate performs one bounded call. A panic inside the client is reported as an error.
func (g *lessonGenerator) generate(ctx context.Context, prompt string) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errors.Wrapf(service.ErrGenerationFailed, "text generator panic: %v", r)
		}
	}()

	text, err = g.textGen.Generate(ctx, service.GenerationRequest{
		SystemInstruction: lessonSystemInstruction,
		UserPrompt:        lessonTaskPrefix + prompt,
		MaxOutputTokens:   g.maxTokens,
		Temperature:       g.temperature,
		Model:             g.model,
	})
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.WithStack(service.ErrEmptyCompletion)
	}

	return text, nil
}

// fallbackLesson builds a Markdown lesson from the prompt alone. It is deterministic.
func fallbackLesson(prompt string) string {
	topic := strings.Join(strings.Fields(prompt), " ")

	var b strings.Builder
	fmt.Fprintf(&b, "# Lesson: %s\n\n", topic)

	b.WriteString("## Introduction\n\n")
	fmt.Fprintf(&b, "This lesson introduces %s. It walks through the core ideas, shows how they are used "+
		"and points you to what to study next.\n\n", topic)

	b.WriteString("## Key Concepts\n\n")
	fmt.Fprintf(&b, "- **Definition:** what %s is and the vocabulary used to describe it.\n", topic)
	b.WriteString("- **Building blocks:** the parts it is made of and how they relate to each other.\n")
	b.WriteString("- **Why it matters:** the problems it solves and where it shows up.\n\n")

	b.WriteString("## Examples\n\n")
	fmt.Fprintf(&b, "1. A simple, everyday situation where %s can be observed.\n", topic)
	b.WriteString("2. A worked example that applies each key concept step by step.\n")
	b.WriteString("3. A common mistake and how to recognize it.\n\n")

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "You now have an overview of %s: its definition, its building blocks and "+
		"how it appears in practice.\n\n", topic)

	b.WriteString("## Next Steps\n\n")
	b.WriteString("- Review the key concepts and explain them in your own words.\n")
	b.WriteString("- Try the examples again without looking at the solutions.\n")
	fmt.Fprintf(&b, "- Ask for a follow-up lesson on a specific part of %s.\n", topic)

	return b.String()
}

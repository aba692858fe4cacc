package usecase

import (
	"context"

	"learnhub/internal/domain/entity"
)

// Prompt length accepted by the lesson endpoints.
const (
	PromptMinLength = 5
	PromptMaxLength = 1000
)

// LessonGenerator turns a prompt into lesson text. It never fails: when the external
// service is unavailable it returns a lesson built from a fixed template.
type LessonGenerator interface {
	GenerateLesson(ctx context.Context, prompt string) string
}

// CreateLessonInput defines the data required to request a lesson.
type CreateLessonInput struct {
	UserID        string
	CategoryID    string
	SubCategoryID string
	Prompt        string
}

// LessonUsecase records prompts together with their generated lessons.
type LessonUsecase interface {
	CreateLesson(ctx context.Context, input CreateLessonInput) (*entity.Lesson, error)
	GetLesson(ctx context.Context, id string) (*entity.Lesson, error)
	ListUserLessons(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Lesson], error)
	ListLessons(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Lesson], error)
}

package repository

import (
	"context"

	"learnhub/internal/domain/entity"
	"learnhub/internal/errors"
)

// ErrLessonNotFound is returned when a lesson record does not exist.
var ErrLessonNotFound = errors.New("lesson not found")

// LessonRepository persists the prompt history. Records are never updated.
type LessonRepository interface {
	Create(ctx context.Context, lesson *entity.Lesson) error
	FindByID(ctx context.Context, id string) (*entity.Lesson, error)

	// ListByUser returns the lessons requested by userID.
	ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Lesson], error)

	List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Lesson], error)
}

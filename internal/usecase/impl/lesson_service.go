package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
	"learnhub/internal/usecase"
	"learnhub/internal/util"
)

var (
	errInvalidPrompt    = errors.New("prompt must be between 5 and 1000 characters")
	errMissingReference = errors.New("category_id and sub_category_id are required")
)

// lessonService implements the LessonUsecase interface.
type lessonService struct {
	lessonRepo repository.LessonRepository
	generator  usecase.LessonGenerator
	logger     *slog.Logger
	now        func() time.Time
}

// LessonServiceParams holds dependencies for LessonService, injected by Fx.
type LessonServiceParams struct {
	fx.In

	LessonRepo repository.LessonRepository
	Generator  usecase.LessonGenerator
	Logger     *slog.Logger
}

// NewLessonService is the constructor for lessonService.
func NewLessonService(params LessonServiceParams) usecase.LessonUsecase {
	return &lessonService{
		lessonRepo: params.LessonRepo,
		generator:  params.Generator,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *lessonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func normalizeLessonPage(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(entity.SortFieldCreatedAt, entity.SortDesc, entity.SortFieldCreatedAt)
}

// CreateLesson generates the lesson text and stores it with the prompt.
// Generation never fails the request; only the store write can.
func (srv *lessonService) CreateLesson(ctx context.Context, input usecase.CreateLessonInput) (*entity.Lesson, error) {
	if n := util.RuneLen(input.Prompt); n < usecase.PromptMinLength || n > usecase.PromptMaxLength {
		return nil, validationError(errInvalidPrompt)
	}
	if strings.TrimSpace(input.CategoryID) == "" || strings.TrimSpace(input.SubCategoryID) == "" {
		return nil, validationError(errMissingReference)
	}

	lesson := &entity.Lesson{
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Prompt:        input.Prompt,
		Response:      srv.generator.GenerateLesson(ctx, input.Prompt),
		CreatedAt:     srv.now().UTC(),
	}

	if err := srv.lessonRepo.Create(ctx, lesson); err != nil {
		srv.log(ctx).Error("Failed to store lesson", slog.String("user_id", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create lesson")
	}

	srv.log(ctx).Info("Lesson created",
		slog.String("lesson_id", lesson.ID),
		slog.String("user_id", lesson.UserID),
		slog.String("prompt", util.Truncate(lesson.Prompt, 64)),
	)

	return lesson, nil
}

func (srv *lessonService) GetLesson(ctx context.Context, id string) (*entity.Lesson, error) {
	lesson, err := srv.lessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrLessonNotFound, "failed to get lesson")
	}

	return lesson, nil
}

func (srv *lessonService) ListUserLessons(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	lessons, err := srv.lessonRepo.ListByUser(ctx, userID, normalizeLessonPage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user lessons")
	}

	return lessons, nil
}

func (srv *lessonService) ListLessons(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	lessons, err := srv.lessonRepo.List(ctx, normalizeLessonPage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lessons")
	}

	return lessons, nil
}

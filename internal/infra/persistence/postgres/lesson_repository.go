package postgres

import (
	"context"

	"gorm.io/gorm"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
	"learnhub/internal/infra/persistence/model"
)

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a GORM backed repository.LessonRepository.
func NewLessonRepository(db *gorm.DB) repository.LessonRepository {
	return &lessonRepository{db: db}
}

func (repo *lessonRepository) Create(ctx context.Context, lesson *entity.Lesson) error {
	lessonM := fromLessonDomain(lesson)
	lessonM.ID = newID()

	if err := repo.db.WithContext(ctx).Create(lessonM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create lesson")
	}

	lesson.ID = lessonM.ID.String()
	lesson.CreatedAt = lessonM.CreatedAt

	return nil
}

func (repo *lessonRepository) FindByID(ctx context.Context, id string) (*entity.Lesson, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var lessonM model.LessonModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).Take(&lessonM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrLessonNotFound
		}

		return nil, errors.Wrap(err, "failed to find lesson")
	}

	return toLessonDomain(&lessonM), nil
}

func (repo *lessonRepository) ListByUser(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	var lessons []model.LessonModel
	query := repo.db.WithContext(ctx).Model(&model.LessonModel{}).Where("user_id = ?", userID)
	total, err := paginate(query, page, &lessons)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list user lessons")
	}

	return toPage(lessons, total, page, toLessonDomain), nil
}

func (repo *lessonRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Lesson], error) {
	var lessons []model.LessonModel
	total, err := paginate(repo.db.WithContext(ctx).Model(&model.LessonModel{}), page, &lessons)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list lessons")
	}

	return toPage(lessons, total, page, toLessonDomain), nil
}

func toLessonDomain(data *model.LessonModel) *entity.Lesson {
	return &entity.Lesson{
		ID:            data.ID.String(),
		UserID:        data.UserID,
		CategoryID:    data.CategoryID,
		SubCategoryID: data.SubCategoryID,
		Prompt:        data.Prompt,
		Response:      data.Response,
		CreatedAt:     data.CreatedAt,
	}
}

func fromLessonDomain(data *entity.Lesson) *model.LessonModel {
	return &model.LessonModel{
		UserID:        data.UserID,
		CategoryID:    data.CategoryID,
		SubCategoryID: data.SubCategoryID,
		Prompt:        data.Prompt,
		Response:      data.Response,
		CreatedAt:     data.CreatedAt,
	}
}

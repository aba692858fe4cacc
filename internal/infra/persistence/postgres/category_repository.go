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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a GORM backed repository.CategoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		ID:        newID(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID.String()
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).Take(&categoryM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Category], error) {
	var categories []model.CategoryModel
	total, err := paginate(repo.db.WithContext(ctx).Model(&model.CategoryModel{}), page, &categories)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	return toPage(categories, total, page, toCategoryDomain), nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:        data.ID.String(),
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

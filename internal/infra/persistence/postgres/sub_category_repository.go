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

type subCategoryRepository struct {
	db *gorm.DB
}

// NewSubCategoryRepository creates a GORM backed repository.SubCategoryRepository.
func NewSubCategoryRepository(db *gorm.DB) repository.SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

func (repo *subCategoryRepository) Create(ctx context.Context, subCategory *entity.SubCategory) error {
	categoryID, err := parseID(subCategory.CategoryID)
	if err != nil {
		return err
	}

	subCategoryM := &model.SubCategoryModel{
		ID:         newID(),
		Name:       subCategory.Name,
		CategoryID: categoryID,
		CreatedAt:  subCategory.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(subCategoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sub-category")
	}

	subCategory.ID = subCategoryM.ID.String()
	subCategory.CreatedAt = subCategoryM.CreatedAt

	return nil
}

func (repo *subCategoryRepository) FindByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var subCategoryM model.SubCategoryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", uid).Take(&subCategoryM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrSubCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find sub-category")
	}

	return toSubCategoryDomain(&subCategoryM), nil
}

func (repo *subCategoryRepository) List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	var subCategories []model.SubCategoryModel
	total, err := paginate(repo.db.WithContext(ctx).Model(&model.SubCategoryModel{}), page, &subCategories)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sub-categories")
	}

	return toPage(subCategories, total, page, toSubCategoryDomain), nil
}

func (repo *subCategoryRepository) ListByCategory(ctx context.Context, categoryID string, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	uid, err := parseID(categoryID)
	if err != nil {
		return nil, err
	}

	var subCategories []model.SubCategoryModel
	query := repo.db.WithContext(ctx).Model(&model.SubCategoryModel{}).Where("category_id = ?", uid)
	total, err := paginate(query, page, &subCategories)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list sub-categories by category")
	}

	return toPage(subCategories, total, page, toSubCategoryDomain), nil
}

func (repo *subCategoryRepository) Delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Where("id = ?", uid).Delete(&model.SubCategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete sub-category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubCategoryNotFound
	}

	return nil
}

func toSubCategoryDomain(data *model.SubCategoryModel) *entity.SubCategory {
	return &entity.SubCategory{
		ID:         data.ID.String(),
		Name:       data.Name,
		CategoryID: data.CategoryID.String(),
		CreatedAt:  data.CreatedAt,
	}
}

package usecase

import (
	"context"

	"learnhub/internal/domain/entity"
)

// Category and sub-category name length.
const (
	CatalogNameMinLength = 2
	CatalogNameMaxLength = 100
)

// CatalogUsecase manages the two-level category taxonomy.
type CatalogUsecase interface {
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	ListCategories(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Category], error)

	// CreateSubCategory fails with a not found error when categoryID does not exist.
	CreateSubCategory(ctx context.Context, name, categoryID string) (*entity.SubCategory, error)
	GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error)
	ListSubCategories(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error)
	ListSubCategoriesByCategory(ctx context.Context, categoryID string, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error)
	DeleteSubCategory(ctx context.Context, id string) error
}

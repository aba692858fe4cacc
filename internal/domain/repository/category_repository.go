package repository

import (
	"context"

	"learnhub/internal/domain/entity"
	"learnhub/internal/errors"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("sub-category not found")
)

// CategoryRepository persists the top level of the taxonomy.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Category], error)
}

// SubCategoryRepository persists sub-categories.
type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *entity.SubCategory) error
	FindByID(ctx context.Context, id string) (*entity.SubCategory, error)
	List(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error)

	// ListByCategory returns the sub-categories referencing categoryID.
	ListByCategory(ctx context.Context, categoryID string, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error)

	// Delete removes a sub-category, returning ErrSubCategoryNotFound when nothing was removed.
	Delete(ctx context.Context, id string) error
}

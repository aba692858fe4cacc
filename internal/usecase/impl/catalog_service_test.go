package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	mockRepo "learnhub/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service         *catalogService
	categoryRepo    *mockRepo.MockCategoryRepository
	subCategoryRepo *mockRepo.MockSubCategoryRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	subCategoryRepo := mockRepo.NewMockSubCategoryRepository(t)

	srv := NewCatalogService(CatalogServiceParams{
		CategoryRepo:    categoryRepo,
		SubCategoryRepo: subCategoryRepo,
		Logger:          newDiscardLogger(),
	}).(*catalogService)
	srv.now = func() time.Time { return fixedNow }

	return catalogServiceFixtures{
		service:         srv,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
	}
}

func TestCatalogService_CreateCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(_ context.Context, category *entity.Category) {
			category.ID = "cat-1"
		}).
		Return(nil)

	category, err := fx.service.CreateCategory(ctx, "  Science ")

	require.NoError(t, err)
	assert.Equal(t, &entity.Category{ID: "cat-1", Name: "Science", CreatedAt: fixedNow}, category)
}

func TestCatalogService_CreateCategory_InvalidName(t *testing.T) {
	for _, name := range []string{"", " S ", strings.Repeat("n", 101)} {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateCategory(context.Background(), name)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "name %q", name)
	}
}

func TestCatalogService_GetCategory(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr *domainerrors.BaseError
	}{
		{name: "not found", repoErr: repository.ErrCategoryNotFound, wantErr: domainerrors.ErrCategoryNotFound},
		{name: "malformed id", repoErr: repository.ErrInvalidID, wantErr: domainerrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			fx.categoryRepo.EXPECT().FindByID(mock.Anything, "cat-1").Return(nil, tt.repoErr)

			_, err := fx.service.GetCategory(context.Background(), "cat-1")

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_CreateSubCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(ctx, "cat-1").Return(&entity.Category{ID: "cat-1", Name: "Science"}, nil)
	fx.subCategoryRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SubCategory")).
		Run(func(_ context.Context, sub *entity.SubCategory) {
			assert.Equal(t, "cat-1", sub.CategoryID)
			sub.ID = "sub-1"
		}).
		Return(nil)

	sub, err := fx.service.CreateSubCategory(ctx, "Biology", "cat-1")

	require.NoError(t, err)
	assert.Equal(t, &entity.SubCategory{ID: "sub-1", Name: "Biology", CategoryID: "cat-1", CreatedAt: fixedNow}, sub)
}

func TestCatalogService_CreateSubCategory_MissingCategory(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr *domainerrors.BaseError
	}{
		{name: "unknown category", repoErr: repository.ErrCategoryNotFound, wantErr: domainerrors.ErrCategoryNotFound},
		{name: "malformed category id", repoErr: repository.ErrInvalidID, wantErr: domainerrors.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			fx.categoryRepo.EXPECT().FindByID(mock.Anything, "cat-x").Return(nil, tt.repoErr)

			sub, err := fx.service.CreateSubCategory(context.Background(), "Biology", "cat-x")

			assert.Nil(t, sub)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_ListCategories_NormalizesPage(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	want := entity.PageRequest{Page: 2, Limit: entity.DefaultPageLimit, SortBy: entity.SortFieldName, Order: entity.SortAsc}

	fx.categoryRepo.EXPECT().List(ctx, want).Return(&entity.Page[*entity.Category]{Page: 2}, nil)

	page, err := fx.service.ListCategories(ctx, entity.PageRequest{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

func TestCatalogService_ListSubCategoriesByCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	want := entity.PageRequest{Page: 1, Limit: 5, SortBy: entity.SortFieldCreatedAt, Order: entity.SortDesc}
	result := &entity.Page[*entity.SubCategory]{
		Items: []*entity.SubCategory{{ID: "sub-1", Name: "Biology", CategoryID: "cat-1"}},
		Total: 1,
		Page:  1,
		Limit: 5,
	}

	fx.subCategoryRepo.EXPECT().ListByCategory(ctx, "cat-1", want).Return(result, nil)

	page, err := fx.service.ListSubCategoriesByCategory(ctx, "cat-1", entity.PageRequest{
		Page:   1,
		Limit:  5,
		SortBy: entity.SortFieldCreatedAt,
		Order:  entity.SortDesc,
	})

	require.NoError(t, err)
	assert.Equal(t, result, page)
}

func TestCatalogService_DeleteSubCategory(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.subCategoryRepo.EXPECT().Delete(mock.Anything, "sub-1").Return(nil)

		assert.NoError(t, fx.service.DeleteSubCategory(context.Background(), "sub-1"))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.subCategoryRepo.EXPECT().Delete(mock.Anything, "sub-1").Return(repository.ErrSubCategoryNotFound)

		err := fx.service.DeleteSubCategory(context.Background(), "sub-1")

		assert.ErrorIs(t, err, domainerrors.ErrSubCategoryNotFound)
	})
}

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

var errInvalidCatalogName = errors.New("name must be between 2 and 100 characters")

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	logger          *slog.Logger
	now             func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:    params.CategoryRepo,
		subCategoryRepo: params.SubCategoryRepo,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func catalogName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if n := util.RuneLen(name); n < usecase.CatalogNameMinLength || n > usecase.CatalogNameMaxLength {
		return "", validationError(errInvalidCatalogName)
	}

	return name, nil
}

func normalizeCatalogPage(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(entity.SortFieldName, entity.SortAsc, entity.SortFieldName, entity.SortFieldCreatedAt)
}

func (srv *catalogService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name, err := catalogName(name)
	if err != nil {
		return nil, err
	}

	category := &entity.Category{Name: name, CreatedAt: srv.now().UTC()}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Error("Failed to create category", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("category_id", category.ID))

	return category, nil
}

func (srv *catalogService) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrCategoryNotFound, "failed to get category")
	}

	return category, nil
}

func (srv *catalogService) ListCategories(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Category], error) {
	categories, err := srv.categoryRepo.List(ctx, normalizeCatalogPage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateSubCategory checks that the parent category exists before inserting.
// The reference is not re-checked afterwards.
func (srv *catalogService) CreateSubCategory(ctx context.Context, name, categoryID string) (*entity.SubCategory, error) {
	name, err := catalogName(name)
	if err != nil {
		return nil, err
	}

	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, translateRepoError(err, domainerrors.ErrCategoryNotFound, "failed to find parent category")
	}

	subCategory := &entity.SubCategory{
		Name:       name,
		CategoryID: categoryID,
		CreatedAt:  srv.now().UTC(),
	}
	if err := srv.subCategoryRepo.Create(ctx, subCategory); err != nil {
		srv.log(ctx).Error("Failed to create sub-category", slog.Any("error", err))

		return nil, translateRepoError(err, domainerrors.ErrSubCategoryNotFound, "failed to create sub-category")
	}

	srv.log(ctx).Info("Sub-category created",
		slog.String("sub_category_id", subCategory.ID),
		slog.String("category_id", categoryID),
	)

	return subCategory, nil
}

func (srv *catalogService) GetSubCategory(ctx context.Context, id string) (*entity.SubCategory, error) {
	subCategory, err := srv.subCategoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrSubCategoryNotFound, "failed to get sub-category")
	}

	return subCategory, nil
}

func (srv *catalogService) ListSubCategories(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	subCategories, err := srv.subCategoryRepo.List(ctx, normalizeCatalogPage(page))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sub-categories")
	}

	return subCategories, nil
}

func (srv *catalogService) ListSubCategoriesByCategory(ctx context.Context, categoryID string, page entity.PageRequest) (*entity.Page[*entity.SubCategory], error) {
	subCategories, err := srv.subCategoryRepo.ListByCategory(ctx, categoryID, normalizeCatalogPage(page))
	if err != nil {
		return nil, translateRepoError(err, domainerrors.ErrCategoryNotFound, "failed to list sub-categories by category")
	}

	return subCategories, nil
}

func (srv *catalogService) DeleteSubCategory(ctx context.Context, id string) error {
	if err := srv.subCategoryRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, domainerrors.ErrSubCategoryNotFound, "failed to delete sub-category")
	}

	srv.log(ctx).Info("Sub-category deleted", slog.String("sub_category_id", id))

	return nil
}

package handler

import (
	"log/slog"
	"net/http"

	"learnhub/internal/delivery/api/response"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for the catalog handlers, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CategoryHandler serves the category endpoints.
type CategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CatalogHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateCategory handles category creation
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CatalogRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCategoryResponse(category))
}

// GetCategory returns one category
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.catalogUC.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCategoryResponse(category))
}

// ListCategories returns one page of categories
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(categories, newCategoryResponse))
}

// ListCategorySubCategories returns the sub-categories of one category
func (h *CategoryHandler) ListCategorySubCategories(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	subCategories, err := h.catalogUC.ListSubCategoriesByCategory(c.Request().Context(), c.Param("id"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(subCategories, newSubCategoryResponse))
}

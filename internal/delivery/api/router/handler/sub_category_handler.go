package handler

import (
	"log/slog"
	"net/http"

	"learnhub/internal/delivery/api/response"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SubCategoryHandler serves the sub-category endpoints.
type SubCategoryHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewSubCategoryHandler is the constructor for SubCategoryHandler
func NewSubCategoryHandler(params CatalogHandlerParams) *SubCategoryHandler {
	return &SubCategoryHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateSubCategory handles sub-category creation
func (h *SubCategoryHandler) CreateSubCategory(c echo.Context) error {
	var req SubCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	subCategory, err := h.catalogUC.CreateSubCategory(c.Request().Context(), req.Name, req.CategoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSubCategoryResponse(subCategory))
}

// GetSubCategory returns one sub-category
func (h *SubCategoryHandler) GetSubCategory(c echo.Context) error {
	subCategory, err := h.catalogUC.GetSubCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSubCategoryResponse(subCategory))
}

// ListSubCategories returns one page of sub-categories
func (h *SubCategoryHandler) ListSubCategories(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	subCategories, err := h.catalogUC.ListSubCategories(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(subCategories, newSubCategoryResponse))
}

// DeleteSubCategory removes one sub-category
func (h *SubCategoryHandler) DeleteSubCategory(c echo.Context) error {
	if err := h.catalogUC.DeleteSubCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

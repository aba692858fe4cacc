package handler

import (
	"log/slog"
	"net/http"

	"learnhub/internal/delivery/api/middleware"
	"learnhub/internal/delivery/api/response"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LessonHandlerParams holds dependencies for LessonHandler, injected by Fx.
type LessonHandlerParams struct {
	fx.In

	LessonUC usecase.LessonUsecase
	Logger   *slog.Logger
}

// LessonHandler serves the prompt endpoints.
type LessonHandler struct {
	lessonUC usecase.LessonUsecase
	logger   *slog.Logger
}

// NewLessonHandler is the constructor for LessonHandler
func NewLessonHandler(params LessonHandlerParams) *LessonHandler {
	return &LessonHandler{
		lessonUC: params.LessonUC,
		logger:   params.Logger,
	}
}

// CreatePrompt generates and stores a lesson for the authenticated user.
func (h *LessonHandler) CreatePrompt(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PromptRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	lesson, err := h.lessonUC.CreateLesson(c.Request().Context(), usecase.CreateLessonInput{
		UserID:        userID,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Prompt:        req.Prompt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newLessonResponse(lesson))
}

// GetPrompt returns one stored lesson
func (h *LessonHandler) GetPrompt(c echo.Context) error {
	lesson, err := h.lessonUC.GetLesson(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newLessonResponse(lesson))
}

// ListPrompts returns one page of lessons across all users
func (h *LessonHandler) ListPrompts(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	lessons, err := h.lessonUC.ListLessons(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(lessons, newLessonResponse))
}

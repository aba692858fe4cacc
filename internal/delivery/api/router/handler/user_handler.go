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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	LessonUC   usecase.LessonUsecase
	Logger     *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	identityUC usecase.IdentityUsecase
	lessonUC   usecase.LessonUsecase
	logger     *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		identityUC: params.IdentityUC,
		lessonUC:   params.LessonUC,
		logger:     params.Logger,
	}
}

// Register handles user registration
func (h *UserHandler) Register(c echo.Context) error {
	var req IdentityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.identityUC.Register(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTokenResponse(out))
}

// Login handles user login
func (h *UserHandler) Login(c echo.Context) error {
	var req IdentityRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	out, err := h.identityUC.Login(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(out))
}

// Me returns the authenticated user
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return h.profile(c, userID)
}

// GetUser returns a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	return h.profile(c, c.Param("id"))
}

func (h *UserHandler) profile(c echo.Context, userID string) error {
	user, err := h.identityUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// ListUsers returns one page of users
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	users, err := h.identityUC.ListUsers(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(users, newUserResponse))
}

// ListUserPrompts returns the lessons requested by one user
func (h *UserHandler) ListUserPrompts(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return invalidPageQuery(c)
	}

	lessons, err := h.lessonUC.ListUserLessons(c.Request().Context(), c.Param("id"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPage(lessons, newLessonResponse))
}

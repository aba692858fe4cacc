package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "learnhub/internal/delivery/api/middleware"
	"learnhub/internal/delivery/api/router/handler"
	"learnhub/internal/delivery/api/validator"
	"learnhub/internal/domain/entity"
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/errors"
	mockUC "learnhub/internal/mocks/usecase"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo       *echo.Echo
	identityUC *mockUC.MockIdentityUsecase
	catalogUC  *mockUC.MockCatalogUsecase
	lessonUC   *mockUC.MockLessonUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	identityUC := mockUC.NewMockIdentityUsecase(t)
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	lessonUC := mockUC.NewMockLessonUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	catalogParams := handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}
	NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			IdentityUC: identityUC,
			LessonUC:   lessonUC,
			Logger:     logger,
		}),
		CategoryHandler:    handler.NewCategoryHandler(catalogParams),
		SubCategoryHandler: handler.NewSubCategoryHandler(catalogParams),
		LessonHandler: handler.NewLessonHandler(handler.LessonHandlerParams{
			LessonUC: lessonUC,
			Logger:   logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			IdentityUC: identityUC,
			Logger:     logger,
		}),
	}).RegisterRoutes(e)

	return routerFixtures{echo: e, identityUC: identityUC, catalogUC: catalogUC, lessonUC: lessonUC}
}

func (fx routerFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_HealthCheck(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_Register(t *testing.T) {
	fx := createTestRouter(t)
	expiresAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	fx.identityUC.EXPECT().
		Register(mock.Anything, usecase.IdentityInput{Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}).
		Return(&usecase.TokenOutput{
			AccessToken: "signed-token",
			TokenType:   usecase.TokenTypeBearer,
			ExpiresAt:   expiresAt,
			UserID:      "user-1",
			Name:        "Ana",
			IDNumber:    "123456789",
		}, nil)

	rec := fx.do(http.MethodPost, "/api/users/register",
		`{"name":"Ana","phone":"0501234567","id_number":"123456789"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"access_token":"signed-token",
		"token_type":"bearer",
		"expires_at":"2026-03-01T12:30:00Z",
		"user_id":"user-1",
		"name":"Ana",
		"id_number":"123456789"
	}`, string(decode(t, rec).Data))
}

func TestRouter_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing field",
			body:     `{"name":"Ana","phone":"0501234567"}`,
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantErr:  "INVALID_INPUT",
		},
		{
			name:     "duplicate phone",
			body:     `{"name":"Ana","phone":"0501234567","id_number":"123456789"}`,
			ucErr:    errors.WithStack(domainerrors.ErrPhoneAlreadyRegistered),
			wantCode: http.StatusConflict,
			wantErr:  "PHONE_ALREADY_REGISTERED",
		},
		{
			name:     "invalid phone",
			body:     `{"name":"Ana","phone":"abc","id_number":"123456789"}`,
			ucErr:    errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(entity.ErrInvalidPhone.Error())),
			wantCode: http.StatusBadRequest,
			wantErr:  "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRouter(t)
			if tt.ucErr != nil {
				fx.identityUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := fx.do(http.MethodPost, "/api/users/register", tt.body, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestRouter_Login_NotFound(t *testing.T) {
	fx := createTestRouter(t)
	fx.identityUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrUserNotFound))

	rec := fx.do(http.MethodPost, "/api/users/login",
		`{"name":"Ana","phone":"0501234567","id_number":"000000000"}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_Me(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestRouter(t)

		rec := fx.do(http.MethodGet, "/api/users/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.identityUC.EXPECT().VerifyToken(mock.Anything, "expired").
			Return("", errors.WithStack(domainerrors.ErrUnauthorized))

		rec := fx.do(http.MethodGet, "/api/users/me", "", "expired")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.identityUC.EXPECT().VerifyToken(mock.Anything, "good").Return("user-1", nil)
		fx.identityUC.EXPECT().GetProfile(mock.Anything, "user-1").
			Return(&entity.User{ID: "user-1", Name: "Ana", Phone: "0501234567", IDNumber: "123456789"}, nil)

		rec := fx.do(http.MethodGet, "/api/users/me", "", "good")

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decode(t, rec).Data)
		assert.Contains(t, data, `"id":"user-1"`)
		assert.NotContains(t, data, "0501234567")
	})
}

func TestRouter_CreatePrompt(t *testing.T) {
	fx := createTestRouter(t)
	fx.identityUC.EXPECT().VerifyToken(mock.Anything, "good").Return("user-1", nil)
	fx.lessonUC.EXPECT().
		CreateLesson(mock.Anything, usecase.CreateLessonInput{
			UserID:        "user-1",
			CategoryID:    "cat-1",
			SubCategoryID: "sub-1",
			Prompt:        "Explain photosynthesis",
		}).
		Return(&entity.Lesson{
			ID:            "lesson-1",
			UserID:        "user-1",
			CategoryID:    "cat-1",
			SubCategoryID: "sub-1",
			Prompt:        "Explain photosynthesis",
			Response:      "# Lesson: Explain photosynthesis",
		}, nil)

	rec := fx.do(http.MethodPost, "/api/prompts",
		`{"category_id":"cat-1","sub_category_id":"sub-1","prompt":"Explain photosynthesis"}`, "good")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"response":"# Lesson: Explain photosynthesis"`)
}

func TestRouter_CreatePrompt_RequiresToken(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodPost, "/api/prompts", `{"category_id":"c","sub_category_id":"s","prompt":"Explain"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ListCategories_PageQuery(t *testing.T) {
	t.Run("forwards query", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.catalogUC.EXPECT().
			ListCategories(mock.Anything, entity.PageRequest{Page: 2, Limit: 5, SortBy: "name", Order: entity.SortDesc}).
			Return(&entity.Page[*entity.Category]{
				Items: []*entity.Category{{ID: "cat-1", Name: "Science"}},
				Total: 6,
				Page:  2,
				Limit: 5,
			}, nil)

		rec := fx.do(http.MethodGet, "/api/categories?page=2&limit=5&sort=name&order=desc", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decode(t, rec).Data)
		assert.Contains(t, data, `"total":6`)
		assert.Contains(t, data, `"name":"Science"`)
	})

	t.Run("non-numeric page", func(t *testing.T) {
		fx := createTestRouter(t)

		rec := fx.do(http.MethodGet, "/api/categories?page=two", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_QUERY", decode(t, rec).Error.Code)
	})
}

func TestRouter_CreateSubCategory_UnknownCategory(t *testing.T) {
	fx := createTestRouter(t)
	fx.catalogUC.EXPECT().CreateSubCategory(mock.Anything, "Biology", "cat-x").
		Return(nil, errors.WithStack(domainerrors.ErrCategoryNotFound))

	rec := fx.do(http.MethodPost, "/api/sub-categories", `{"name":"Biology","category_id":"cat-x"}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestRouter_DeleteSubCategory(t *testing.T) {
	fx := createTestRouter(t)
	fx.catalogUC.EXPECT().DeleteSubCategory(mock.Anything, "sub-1").Return(nil)

	rec := fx.do(http.MethodDelete, "/api/sub-categories/sub-1", "", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_StoreFailureIsInternal(t *testing.T) {
	fx := createTestRouter(t)
	fx.lessonUC.EXPECT().ListLessons(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("socket closed"), "find lessons"))

	rec := fx.do(http.MethodGet, "/api/prompts", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "socket closed")
}

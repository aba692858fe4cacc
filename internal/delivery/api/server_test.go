package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/config"
	apimiddleware "learnhub/internal/delivery/api/middleware"
	"learnhub/internal/delivery/api/router"
	"learnhub/internal/delivery/api/router/handler"
	deliverycontext "learnhub/internal/delivery/context"
	mockUC "learnhub/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *apiServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	identityUC := mockUC.NewMockIdentityUsecase(t)
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	lessonUC := mockUC.NewMockLessonUsecase(t)
	catalogParams := handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}

	d, err := NewServer(ServerParams{
		Lc:           fxtest.NewLifecycle(t),
		Cfg:          cfg,
		Logger:       logger,
		ErrorHandler: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			UserHandler:        handler.NewUserHandler(handler.UserHandlerParams{IdentityUC: identityUC, LessonUC: lessonUC, Logger: logger}),
			CategoryHandler:    handler.NewCategoryHandler(catalogParams),
			SubCategoryHandler: handler.NewSubCategoryHandler(catalogParams),
			LessonHandler:      handler.NewLessonHandler(handler.LessonHandlerParams{LessonUC: lessonUC, Logger: logger}),
			AuthMiddleware:     apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{IdentityUC: identityUC, Logger: logger}),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	return d.(*apiServer)
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "trace-42")
	rec := httptest.NewRecorder()

	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"trace-42"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_BodyLimit(t *testing.T) {
	srv := newTestServer(t)
	body := `{"name":"` + strings.Repeat("a", 2048) + `","phone":"0501234567","id_number":"123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"learnhub/internal/delivery/api/middleware"
	"learnhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	CategoryHandler    *handler.CategoryHandler
	SubCategoryHandler *handler.SubCategoryHandler
	LessonHandler      *handler.LessonHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	categoryHandler    *handler.CategoryHandler
	subCategoryHandler *handler.SubCategoryHandler
	lessonHandler      *handler.LessonHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		categoryHandler:    params.CategoryHandler,
		subCategoryHandler: params.SubCategoryHandler,
		lessonHandler:      params.LessonHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User routes
	usersGroup := api.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.GET("/:id/prompts", r.userHandler.ListUserPrompts)
	}

	// Category routes
	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.GET("/:id/sub-categories", r.categoryHandler.ListCategorySubCategories)
	}

	// Sub-category routes
	subCategoriesGroup := api.Group("/sub-categories")
	{
		subCategoriesGroup.POST("", r.subCategoryHandler.CreateSubCategory)
		subCategoriesGroup.GET("", r.subCategoryHandler.ListSubCategories)
		subCategoriesGroup.GET("/:id", r.subCategoryHandler.GetSubCategory)
		subCategoriesGroup.DELETE("/:id", r.subCategoryHandler.DeleteSubCategory)
	}

	// Prompt routes, creating one requires authentication
	promptsGroup := api.Group("/prompts")
	{
		promptsGroup.POST("", r.lessonHandler.CreatePrompt, r.authMiddleware.Authenticate)
		promptsGroup.GET("", r.lessonHandler.ListPrompts)
		promptsGroup.GET("/:id", r.lessonHandler.GetPrompt)
	}
}

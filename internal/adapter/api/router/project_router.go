package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
	"portfolio/internal/adapter/api/middleware"
)

func SetupProjectRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	projectHandler := handler.GetProjectHandler()

	// Public routes
	e.GET("/v1/projects", projectHandler.List)
	e.GET("/v1/projects/featured", projectHandler.ListFeatured)
	e.GET("/v1/projects/:id", projectHandler.GetByID)

	// Admin routes
	admin := e.Group("/v1/admin/projects")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.POST("", projectHandler.Create)
	admin.PUT("/:id", projectHandler.Update)
	admin.DELETE("/:id", projectHandler.Delete)
}

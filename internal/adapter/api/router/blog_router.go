package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
	"portfolio/internal/adapter/api/middleware"
)

func SetupBlogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	blogHandler := handler.GetBlogHandler()

	// Public routes
	e.GET("/v1/blog", blogHandler.List)
	e.GET("/v1/blog/featured", blogHandler.ListFeatured)
	e.GET("/v1/blog/recent", blogHandler.ListRecent)
	e.GET("/v1/blog/:slug", blogHandler.GetBySlug)
	e.POST("/v1/blog/:slug/view", blogHandler.RecordView)

	// Liking requires a signed-in reader
	protected := e.Group("/v1/blog")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/:slug/like", blogHandler.ToggleLike)

	// Admin routes
	admin := e.Group("/v1/admin/blog")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.POST("", blogHandler.Create)
	admin.PUT("/:id", blogHandler.Update)
	admin.DELETE("/:id", blogHandler.Delete)
}

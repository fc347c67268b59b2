package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupProjectRouter(e, authMiddleware, adminMiddleware)
	SetupProfileRouter(e, authMiddleware, adminMiddleware)
	SetupChatRouter(e, authMiddleware, adminMiddleware)
	SetupWebSocketRouter(e, authMiddleware, adminMiddleware)
	SetupSitemapRouter(e)
}

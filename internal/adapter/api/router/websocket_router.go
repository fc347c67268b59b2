package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
	"portfolio/internal/adapter/api/middleware"
)

func SetupWebSocketRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	websocketHandler := handler.GetWebSocketHandler()

	e.GET("/ws/chat", websocketHandler.HandleVisitor, authMiddleware.Authenticate)
	e.GET("/ws/admin/chat", websocketHandler.HandleAdmin, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}

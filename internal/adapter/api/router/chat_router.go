package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
	"portfolio/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	chatHandler := handler.GetChatHandler()

	// Visitor routes, each scoped to the caller's own room
	visitor := e.Group("/v1/chat")
	visitor.Use(authMiddleware.Authenticate)

	visitor.POST("/room", chatHandler.GetOrCreateRoom)
	visitor.GET("/messages", chatHandler.ListMyMessages)
	visitor.POST("/messages", chatHandler.SendMyMessage)
	visitor.POST("/read", chatHandler.MarkMyRoomRead)

	// Admin routes
	admin := e.Group("/v1/admin/chat")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/rooms", chatHandler.ListRooms)
	admin.GET("/rooms/:id/messages", chatHandler.ListRoomMessages)
	admin.POST("/rooms/:id/messages", chatHandler.SendRoomMessage)
	admin.POST("/rooms/:id/read", chatHandler.MarkRoomRead)
}

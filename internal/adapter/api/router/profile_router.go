package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
	"portfolio/internal/adapter/api/middleware"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	profileHandler := handler.GetProfileHandler()

	// Public routes
	e.GET("/v1/profile", profileHandler.GetProfile)

	// Admin routes
	admin := e.Group("/v1/admin/profile")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.PUT("/personal-info", profileHandler.UpdatePersonalInfo)

	admin.POST("/skills", profileHandler.CreateSkill)
	admin.PUT("/skills/:id", profileHandler.UpdateSkill)
	admin.DELETE("/skills/:id", profileHandler.DeleteSkill)

	admin.POST("/experience", profileHandler.CreateExperience)
	admin.PUT("/experience/:id", profileHandler.UpdateExperience)
	admin.DELETE("/experience/:id", profileHandler.DeleteExperience)

	admin.POST("/achievements", profileHandler.CreateAchievement)
	admin.PUT("/achievements/:id", profileHandler.UpdateAchievement)
	admin.DELETE("/achievements/:id", profileHandler.DeleteAchievement)

	admin.POST("/interests", profileHandler.CreateInterest)
	admin.PUT("/interests/:id", profileHandler.UpdateInterest)
	admin.DELETE("/interests/:id", profileHandler.DeleteInterest)
}

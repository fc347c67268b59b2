package handler

import (
	"portfolio/internal/domain/repository"
	ws "portfolio/internal/infrastructure/websocket"
	"portfolio/internal/usecase"
)

var (
	healthHandler    *HealthHandler
	authHandler      *AuthHandler
	blogHandler      *BlogHandler
	projectHandler   *ProjectHandler
	profileHandler   *ProfileHandler
	chatHandler      *ChatHandler
	websocketHandler *WebSocketHandler
	sitemapHandler   *SitemapHandler
)

type Deps struct {
	Environment   string
	AdminEmail    string
	AdminPassword string

	AuthUseCase    *usecase.AuthUseCase
	BlogUseCase    *usecase.BlogUseCase
	ProjectUseCase *usecase.ProjectUseCase
	ProfileUseCase *usecase.ProfileUseCase
	ChatUseCase    *usecase.ChatUseCase
	SitemapUseCase *usecase.SitemapUseCase

	UserRepo  repository.UserRepository
	WSManager *ws.Manager
}

func Setup(deps Deps) {
	healthHandler = NewHealthHandler(deps.Environment, deps.WSManager)
	authHandler = NewAuthHandler(deps.AuthUseCase, deps.AdminEmail, deps.AdminPassword)
	blogHandler = NewBlogHandler(deps.BlogUseCase)
	projectHandler = NewProjectHandler(deps.ProjectUseCase)
	profileHandler = NewProfileHandler(deps.ProfileUseCase)
	chatHandler = NewChatHandler(deps.ChatUseCase, deps.UserRepo)
	websocketHandler = NewWebSocketHandler(deps.WSManager, deps.ChatUseCase, deps.UserRepo)
	sitemapHandler = NewSitemapHandler(deps.SitemapUseCase)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}

func GetSitemapHandler() *SitemapHandler {
	return sitemapHandler
}

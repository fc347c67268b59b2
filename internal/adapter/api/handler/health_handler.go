package handler

import (
	"github.com/labstack/echo/v4"

	ws "portfolio/internal/infrastructure/websocket"
	"portfolio/pkg/response"
)

type HealthHandler struct {
	environment string
	wsManager   *ws.Manager
}

func NewHealthHandler(environment string, wsManager *ws.Manager) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		wsManager:   wsManager,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, map[string]interface{}{
		"status":      "ok",
		"environment": h.environment,
		"connections": h.wsManager.ClientCount(),
	})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
)

type AuthHandler struct {
	authUseCase   *usecase.AuthUseCase
	adminEmail    string
	adminPassword string
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, adminEmail, adminPassword string) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.Register(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *AuthHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.GetMe(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// SetupAdmin provisions the configured admin account. The usecase rejects a
// second call once the account exists.
func (h *AuthHandler) SetupAdmin(c echo.Context) error {
	admin, token, err := h.authUseCase.SetupAdmin(c.Request().Context(), h.adminEmail, h.adminPassword)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"user":  admin,
		"token": token,
	})
}

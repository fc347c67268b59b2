package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, projects)
}

func (h *ProjectHandler) ListFeatured(c echo.Context) error {
	projects, err := h.projectUseCase.ListFeatured(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, projects)
}

func (h *ProjectHandler) GetByID(c echo.Context) error {
	project, err := h.projectUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, project)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var req usecase.CreateProjectInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var req usecase.UpdateProjectInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	project, err := h.projectUseCase.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projectUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

package handler

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetProfile returns the whole profile page payload in one request.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUseCase.GetProfile(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdatePersonalInfo(c echo.Context) error {
	var info entity.PersonalInfo
	if err := c.Bind(&info); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.profileUseCase.UpdatePersonalInfo(c.Request().Context(), &info); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, info)
}

func (h *ProfileHandler) CreateSkill(c echo.Context) error {
	var skill entity.Skill
	if err := c.Bind(&skill); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.profileUseCase.CreateSkill(c.Request().Context(), &skill); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, skill)
}

func (h *ProfileHandler) UpdateSkill(c echo.Context) error {
	var skill entity.Skill
	if err := c.Bind(&skill); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	skill.ID = c.Param("id")

	if err := h.profileUseCase.UpdateSkill(c.Request().Context(), &skill); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, skill)
}

func (h *ProfileHandler) DeleteSkill(c echo.Context) error {
	if err := h.profileUseCase.DeleteSkill(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *ProfileHandler) CreateExperience(c echo.Context) error {
	var exp entity.Experience
	if err := c.Bind(&exp); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.profileUseCase.CreateExperience(c.Request().Context(), &exp); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, exp)
}

func (h *ProfileHandler) UpdateExperience(c echo.Context) error {
	var exp entity.Experience
	if err := c.Bind(&exp); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	exp.ID = c.Param("id")

	if err := h.profileUseCase.UpdateExperience(c.Request().Context(), &exp); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, exp)
}

func (h *ProfileHandler) DeleteExperience(c echo.Context) error {
	if err := h.profileUseCase.DeleteExperience(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *ProfileHandler) CreateAchievement(c echo.Context) error {
	var a entity.Achievement
	if err := c.Bind(&a); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.profileUseCase.CreateAchievement(c.Request().Context(), &a); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, a)
}

func (h *ProfileHandler) UpdateAchievement(c echo.Context) error {
	var a entity.Achievement
	if err := c.Bind(&a); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	a.ID = c.Param("id")

	if err := h.profileUseCase.UpdateAchievement(c.Request().Context(), &a); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, a)
}

func (h *ProfileHandler) DeleteAchievement(c echo.Context) error {
	if err := h.profileUseCase.DeleteAchievement(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *ProfileHandler) CreateInterest(c echo.Context) error {
	var i entity.Interest
	if err := c.Bind(&i); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := h.profileUseCase.CreateInterest(c.Request().Context(), &i); err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, i)
}

func (h *ProfileHandler) UpdateInterest(c echo.Context) error {
	var i entity.Interest
	if err := c.Bind(&i); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	i.ID = c.Param("id")

	if err := h.profileUseCase.UpdateInterest(c.Request().Context(), &i); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, i)
}

func (h *ProfileHandler) DeleteInterest(c echo.Context) error {
	if err := h.profileUseCase.DeleteInterest(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolio/internal/usecase"
	"portfolio/pkg/errors"
	"portfolio/pkg/response"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.blogUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *BlogHandler) ListFeatured(c echo.Context) error {
	posts, err := h.blogUseCase.ListFeatured(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *BlogHandler) ListRecent(c echo.Context) error {
	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	posts, err := h.blogUseCase.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, posts)
}

func (h *BlogHandler) GetBySlug(c echo.Context) error {
	post, err := h.blogUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

// RecordView bumps the post's view counter and returns the new total.
func (h *BlogHandler) RecordView(c echo.Context) error {
	views, err := h.blogUseCase.RecordView(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"views": views})
}

type likeRequest struct {
	Liked bool `json:"liked"`
}

func (h *BlogHandler) ToggleLike(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req likeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	post, err := h.blogUseCase.ToggleLike(c.Request().Context(), c.Param("slug"), uid, req.Liked)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"likes": post.Likes(),
		"liked": req.Liked,
	})
}

func (h *BlogHandler) Create(c echo.Context) error {
	var req usecase.CreateBlogPostInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, post)
}

func (h *BlogHandler) Update(c echo.Context) error {
	var req usecase.UpdateBlogPostInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	post, err := h.blogUseCase.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.blogUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

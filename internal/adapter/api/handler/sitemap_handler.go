package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/usecase"
	"portfolio/pkg/response"
)

type SitemapHandler struct {
	sitemapUseCase *usecase.SitemapUseCase
}

func NewSitemapHandler(sitemapUseCase *usecase.SitemapUseCase) *SitemapHandler {
	return &SitemapHandler{
		sitemapUseCase: sitemapUseCase,
	}
}

func (h *SitemapHandler) Sitemap(c echo.Context) error {
	body, err := h.sitemapUseCase.Sitemap(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return c.Blob(http.StatusOK, "application/xml", body)
}

func (h *SitemapHandler) Robots(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/plain", h.sitemapUseCase.Robots())
}

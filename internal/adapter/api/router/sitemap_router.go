package router

import (
	"github.com/labstack/echo/v4"

	"portfolio/internal/adapter/api/handler"
)

func SetupSitemapRouter(e *echo.Echo) {
	sitemapHandler := handler.GetSitemapHandler()

	e.GET("/sitemap.xml", sitemapHandler.Sitemap)
	e.GET("/robots.txt", sitemapHandler.Robots)
}

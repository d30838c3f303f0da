package server

import (
	"net/http"

	"sweetshop/internal/config"
	"sweetshop/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, itemH *handler.ItemHandler, categoryH *handler.CategoryHandler, metrics http.Handler) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	itemH.RegisterRoutes(e, cfg.JWTSecret)
	categoryH.RegisterRoutes(e, cfg.JWTSecret)
}

package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"sweetshop/internal/config"
	"sweetshop/internal/handler"
	"sweetshop/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアとルートを登録したechoを返す。
func New(cfg config.Config, log *slog.Logger, itemH *handler.ItemHandler, categoryH *handler.CategoryHandler, metrics http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			}
			if uid, ok := middleware.UserIDFromContext(c); ok {
				attrs = append(attrs, "user_id", uid)
			}
			if v.Error != nil {
				log.LogAttrs(c.Request().Context(), slog.LevelError, "http request",
					slog.Group("req", attrs...), slog.String("err", v.Error.Error()))
				return nil
			}
			log.InfoContext(c.Request().Context(), "http request", slog.Group("req", attrs...))
			return nil
		},
	}))

	RegisterRoutes(e, cfg, itemH, categoryH, metrics)
	return e
}

// Start はctxがキャンセルされるまで待ち受ける。
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

package handler

import (
	"net/http"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/middleware"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

type CategoryRequest struct {
	Name string `json:"name"`
}

// /api/categories
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// 一覧は公開（ログイン前の絞り込みUI用）。それ以外はadminのみ。
func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/api/categories", h.list)

	auth := middleware.AuthJWT(jwtSecret)
	admin := middleware.AdminRoleGuard()

	e.POST("/api/categories", h.create, auth, admin)
	e.PUT("/api/categories/:id", h.rename, auth, admin)
	e.DELETE("/api/categories/:id", h.delete, auth, admin)
}

func (h *CategoryHandler) list(c echo.Context) error {
	cats, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[model.Category]{Items: cats})
}

func (h *CategoryHandler) create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	cat, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) rename(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	cat, err := h.uc.Rename(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}

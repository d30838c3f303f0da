package handler

import (
	"net/http"
	"strings"

	"sweetshop/internal/middleware"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// POST /api/sweets の入力
type ItemCreateRequest struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *decimal.Decimal `json:"quantity"`
	Unit     string           `json:"unit"`
}

// PUT /api/sweets/:id の入力（送られたフィールドだけ更新）
type ItemUpdateRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *decimal.Decimal `json:"quantity"`
	Unit     *string          `json:"unit"`
}

// purchase / restock の入力
type StockRequest struct {
	Quantity *decimal.Decimal `json:"quantity"`
}

// /api/sweets をまとめる
type ItemHandler struct {
	items *usecase.ItemUsecase
	stock *usecase.StockUsecase
}

// DI
func NewItemHandler(items *usecase.ItemUsecase, stock *usecase.StockUsecase) *ItemHandler {
	return &ItemHandler{items: items, stock: stock}
}

// ログイン必須。作成・更新・削除・入荷はadminのみ。
func (h *ItemHandler) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	g := e.Group("/api/sweets")
	g.Use(middleware.AuthJWT(jwtSecret))
	admin := middleware.AdminRoleGuard()

	g.POST("", h.create, admin)
	g.GET("", h.list)
	g.GET("/search", h.search)
	g.PUT("/:id", h.update, admin)
	g.DELETE("/:id", h.delete, admin)
	g.POST("/:id/purchase", h.purchase)
	g.POST("/:id/restock", h.restock, admin)
}

func (h *ItemHandler) create(c echo.Context) error {
	var req ItemCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	it, err := h.items.Create(c.Request().Context(), usecase.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toItemResponse(it))
}

func (h *ItemHandler) list(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[ItemResponse]{Items: toItemResponses(items)})
}

func (h *ItemHandler) search(c echo.Context) error {
	items, err := h.items.Search(c.Request().Context(), usecase.SearchItemsInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
		MinPrice: queryDecimal(c, "min"),
		MaxPrice: queryDecimal(c, "max"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ListResponse[ItemResponse]{Items: toItemResponses(items)})
}

func (h *ItemHandler) update(c echo.Context) error {
	var req ItemUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	it, err := h.items.Update(c.Request().Context(), c.Param("id"), usecase.UpdateItemInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
		Unit:     req.Unit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(it))
}

func (h *ItemHandler) delete(c echo.Context) error {
	if err := h.items.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}

func (h *ItemHandler) purchase(c echo.Context) error {
	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.stock.Purchase(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toStockResponse(out))
}

func (h *ItemHandler) restock(c echo.Context) error {
	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.stock.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toStockResponse(out))
}

// 数値にならないクエリは無視する
func queryDecimal(c echo.Context, key string) *decimal.Decimal {
	v := strings.TrimSpace(c.QueryParam(key))
	if v == "" {
		return nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil
	}
	return &d
}

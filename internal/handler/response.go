package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// 一覧は {"items": [...]} で返す
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// アイテムのレスポンス。数量・価格はJSONの数値で返す（"6"ではなく6）。
type ItemResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Price     json.Number `json:"price"`
	Quantity  json.Number `json:"quantity"`
	Unit      model.Unit  `json:"unit"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// purchase / restock のレスポンス
type StockResponse struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Quantity json.Number `json:"quantity"`
	Unit     model.Unit  `json:"unit"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toItemResponse(it model.Item) ItemResponse {
	return ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Category:  it.Category,
		Price:     number(it.Price),
		Quantity:  number(it.Quantity),
		Unit:      it.Unit,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func toItemResponses(items []model.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out
}

func toStockResponse(o usecase.StockOutput) StockResponse {
	return StockResponse{
		ID:       o.ID,
		Name:     o.Name,
		Quantity: number(o.Quantity),
		Unit:     o.Unit,
	}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message, Code: string(he.Code)})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: string(usecase.CodeInternal)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: string(usecase.CodeValidation)})
}

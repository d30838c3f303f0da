package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteError(t *testing.T) {
	c, rec := newContext("/")
	require.NoError(t, writeError(c, usecase.NewHTTPError(http.StatusConflict, usecase.CodeConflict, "sweet with this name already exists")))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"sweet with this name already exists","code":"CONFLICT"}`, rec.Body.String())

	// 想定外のエラーは中身を出さない
	c, rec = newContext("/")
	require.NoError(t, writeError(c, errors.New("pq: relation does not exist")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error","code":"INTERNAL"}`, rec.Body.String())
}

func TestQueryDecimal(t *testing.T) {
	c, _ := newContext("/api/sweets/search?min=10.5&max=abc&empty=")

	got := queryDecimal(c, "min")
	require.NotNil(t, got)
	assert.Equal(t, "10.5", got.String())

	assert.Nil(t, queryDecimal(c, "max"))
	assert.Nil(t, queryDecimal(c, "empty"))
	assert.Nil(t, queryDecimal(c, "missing"))
}

// 数量・価格はグローバル設定に頼らず数値で出る
func TestResponses_NumbersAreJSONNumbers(t *testing.T) {
	require.False(t, decimal.MarshalJSONWithoutQuotes)

	b, err := json.Marshal(toStockResponse(usecase.StockOutput{
		ID: "a1", Name: "Rabri", Quantity: decimal.RequireFromString("2.50"), Unit: model.UnitKg,
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","name":"Rabri","quantity":2.5,"unit":"kg"}`, string(b))

	b, err = json.Marshal(toItemResponse(model.Item{
		ID: "a1", Name: "Barfi", Category: "Indian",
		Price: decimal.RequireFromString("30.50"), Quantity: decimal.NewFromInt(10), Unit: model.UnitPiece,
	}))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 30.5, got["price"])
	assert.Equal(t, float64(10), got["quantity"])
}

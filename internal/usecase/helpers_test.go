package usecase_test

import (
	"context"
	"testing"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/infra/memstore"
	"sweetshop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memstoreで組み立てたusecase一式
type fixture struct {
	store      *memstore.Store
	items      *usecase.ItemUsecase
	stock      *usecase.StockUsecase
	categories *usecase.CategoryUsecase
}

func newFixture() *fixture {
	s := memstore.New()
	cats := usecase.NewCategoryUsecase(s.Categories(), s.Items(), nil, nil)
	return &fixture{
		store:      s,
		items:      usecase.NewItemUsecase(s.Items(), cats, nil),
		stock:      usecase.NewStockUsecase(s.Items(), s.Inventory(), nil, nil),
		categories: cats,
	}
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strp(s string) *string {
	return &s
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

func assertCode(t *testing.T, err error, code usecase.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "not an HTTPError: %v", err)
	assert.Equal(t, code, he.Code, "message: %s", he.Message)
}

func (f *fixture) mustCreate(t *testing.T, name, category, price, qty, unit string) model.Item {
	t.Helper()
	it, err := f.items.Create(context.Background(), usecase.CreateItemInput{
		Name:     name,
		Category: category,
		Price:    dec(price),
		Quantity: dec(qty),
		Unit:     unit,
	})
	require.NoError(t, err)
	return it
}

func categoryNames(t *testing.T, f *fixture) []string {
	t.Helper()
	cats, err := f.store.Categories().List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}
	return names
}

package usecase_test

import (
	"context"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（障害注入用）
// =====================

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) Search(ctx context.Context, q repo.ItemSearchQuery) ([]model.Item, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) FindByID(ctx context.Context, id string) (model.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) FindByName(ctx context.Context, name string) (model.Item, error) {
	args := m.Called(ctx, name)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) Create(ctx context.Context, it model.Item) (model.Item, error) {
	args := m.Called(ctx, it)
	created, _ := args.Get(0).(model.Item)
	return created, args.Error(1)
}

func (m *ItemRepoMock) Update(ctx context.Context, id string, patch repo.ItemPatch) (model.Item, error) {
	args := m.Called(ctx, id, patch)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *ItemRepoMock) CountByCategory(ctx context.Context, category string) (int64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ItemRepoMock) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func (m *ItemRepoMock) RenameCategory(ctx context.Context, oldName string, newName string) (int64, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, bool, error) {
	args := m.Called(ctx, itemID, qty)
	it, _ := args.Get(0).(model.Item)
	return it, args.Bool(1), args.Error(2)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, error) {
	args := m.Called(ctx, itemID, qty)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id string) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) FindByName(ctx context.Context, name string) (model.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

func (m *CategoryRepoMock) Rename(ctx context.Context, id string, name string) (model.Category, error) {
	args := m.Called(ctx, id, name)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CategoryRepoMock) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type RecorderMock struct{ mock.Mock }

func (m *RecorderMock) BookkeepingFailed(op string)            { m.Called(op) }
func (m *RecorderMock) StockChanged(op string, outcome string) { m.Called(op, outcome) }
func (m *RecorderMock) OrphansRemoved(n int)                   { m.Called(n) }

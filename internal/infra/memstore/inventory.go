package memstore

import (
	"context"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/shopspring/decimal"
)

type inventoryRepository struct {
	s *Store
}

// 判定と減算を同じロック内で行う
func (r *inventoryRepository) DecreaseStockIfEnough(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[itemID]
	if !ok || it.Quantity.LessThan(qty) {
		return model.Item{}, false, nil
	}
	it.Quantity = it.Quantity.Sub(qty)
	it.UpdatedAt = r.s.now()
	r.s.items[itemID] = it
	return it, true, nil
}

func (r *inventoryRepository) IncreaseStock(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[itemID]
	if !ok {
		return model.Item{}, repo.ErrNotFound
	}
	// numeric(14,3) と同じ上限
	if it.Quantity.Add(qty).GreaterThanOrEqual(model.QuantityLimit) {
		return model.Item{}, repo.ErrOutOfRange
	}
	it.Quantity = it.Quantity.Add(qty)
	it.UpdatedAt = r.s.now()
	r.s.items[itemID] = it
	return it, nil
}

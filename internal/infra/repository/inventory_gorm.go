package repository

import (
	"context"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす
// 条件判定と減算は1つのUPDATE文で行うので、同時購入でもマイナスにならない。
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, bool, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return model.Item{}, false, nil
	}

	var it model.Item
	res := r.db.WithContext(ctx).
		Model(&it).
		Clauses(clause.Returning{}).
		Where("id = ? AND quantity >= ?", itemID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return model.Item{}, false, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Item{}, false, nil
	}
	return it, true, nil
}

// 入荷
func (r *InventoryGormRepository) IncreaseStock(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, error) {
	if _, err := uuid.Parse(itemID); err != nil {
		return model.Item{}, repo.ErrNotFound
	}

	var it model.Item
	res := r.db.WithContext(ctx).
		Model(&it).
		Clauses(clause.Returning{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", qty))

	if res.Error != nil {
		return model.Item{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Item{}, repo.ErrNotFound
	}
	return it, nil
}

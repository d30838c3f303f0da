package repository

import (
	"context"

	"sweetshop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 在庫数の増減を1回の原子的な更新で行う約束。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければ ok=false で何も変えない。
	DecreaseStockIfEnough(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, bool, error)

	// 在庫を加算（無条件）。存在しなければErrNotFound、桁あふれはErrOutOfRange。
	IncreaseStock(ctx context.Context, itemID string, qty decimal.Decimal) (model.Item, error)
}

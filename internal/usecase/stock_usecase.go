package usecase

import (
	"context"
	"errors"
	"log/slog"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/shopspring/decimal"
)

// 購入・入荷で在庫数を安全に増減する
type StockUsecase struct {
	items     repo.ItemRepository
	inventory repo.InventoryRepository
	rec       Recorder
	log       *slog.Logger
}

// DI
func NewStockUsecase(
	items repo.ItemRepository,
	inventory repo.InventoryRepository,
	rec Recorder,
	log *slog.Logger,
) *StockUsecase {
	return &StockUsecase{
		items:     items,
		inventory: inventory,
		rec:       orNop(rec),
		log:       orDiscard(log),
	}
}

// 購入・入荷後の在庫
type StockOutput struct {
	ID       string
	Name     string
	Quantity decimal.Decimal
	Unit     model.Unit
}

func toStockOutput(it model.Item) StockOutput {
	return StockOutput{
		ID:       it.ID,
		Name:     it.Name,
		Quantity: it.Quantity,
		Unit:     it.Unit.OrDefault(),
	}
}

// 購入。qtyがnilなら1個。
func (u *StockUsecase) Purchase(ctx context.Context, itemID string, qty *decimal.Decimal) (StockOutput, error) {
	requested := decimal.NewFromInt(1)
	if qty != nil {
		requested = *qty
	}
	if !requested.IsPositive() {
		u.rec.StockChanged("purchase", "invalid")
		return StockOutput{}, errValidation("quantity must be greater than 0")
	}

	//存在確認（単位も見る）
	it, err := u.items.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		u.rec.StockChanged("purchase", "not_found")
		return StockOutput{}, errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "purchase: find item", "item_id", itemID, "err", err)
		return StockOutput{}, errInternal()
	}
	if err := validateGranularity(requested, it.Unit.OrDefault()); err != nil {
		u.rec.StockChanged("purchase", "invalid")
		return StockOutput{}, err
	}

	//在庫が足りるときだけ減算（足りないなら false）
	updated, ok, err := u.inventory.DecreaseStockIfEnough(ctx, itemID, requested)
	if err != nil {
		u.log.ErrorContext(ctx, "purchase: decrease stock", "item_id", itemID, "err", err)
		return StockOutput{}, errInternal()
	}
	if !ok {
		//確認後に削除されていたら404
		if _, err := u.items.FindByID(ctx, itemID); errors.Is(err, repo.ErrNotFound) {
			u.rec.StockChanged("purchase", "not_found")
			return StockOutput{}, errNotFound("sweet not found")
		}
		u.rec.StockChanged("purchase", "insufficient")
		return StockOutput{}, errInsufficientStock()
	}

	u.rec.StockChanged("purchase", "ok")
	return toStockOutput(updated), nil
}

// 入荷。数量は必須。
func (u *StockUsecase) Restock(ctx context.Context, itemID string, qty *decimal.Decimal) (StockOutput, error) {
	if qty == nil {
		u.rec.StockChanged("restock", "invalid")
		return StockOutput{}, errValidation("quantity is required")
	}
	if !qty.IsPositive() {
		u.rec.StockChanged("restock", "invalid")
		return StockOutput{}, errValidation("quantity must be greater than 0")
	}

	it, err := u.items.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		u.rec.StockChanged("restock", "not_found")
		return StockOutput{}, errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "restock: find item", "item_id", itemID, "err", err)
		return StockOutput{}, errInternal()
	}
	if err := validateGranularity(*qty, it.Unit.OrDefault()); err != nil {
		u.rec.StockChanged("restock", "invalid")
		return StockOutput{}, err
	}

	updated, err := u.inventory.IncreaseStock(ctx, itemID, *qty)
	if errors.Is(err, repo.ErrNotFound) {
		u.rec.StockChanged("restock", "not_found")
		return StockOutput{}, errNotFound("sweet not found")
	}
	if errors.Is(err, repo.ErrOutOfRange) {
		u.rec.StockChanged("restock", "invalid")
		return StockOutput{}, errValidation("quantity is too large")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "restock: increase stock", "item_id", itemID, "err", err)
		return StockOutput{}, errInternal()
	}

	u.rec.StockChanged("restock", "ok")
	return toStockOutput(updated), nil
}

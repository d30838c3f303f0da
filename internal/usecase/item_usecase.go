package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/shopspring/decimal"
)

// アイテム作成・更新・削除時のカテゴリー後処理
type CategoryBookkeeper interface {
	EnsureExists(ctx context.Context, name string)
	CleanupIfUnused(ctx context.Context, name string)
}

type ItemUsecase struct {
	items      repo.ItemRepository
	categories CategoryBookkeeper
	log        *slog.Logger
}

// DI
func NewItemUsecase(items repo.ItemRepository, categories CategoryBookkeeper, log *slog.Logger) *ItemUsecase {
	return &ItemUsecase{
		items:      items,
		categories: categories,
		log:        orDiscard(log),
	}
}

type CreateItemInput struct {
	Name     string
	Category string
	Price    *decimal.Decimal
	Quantity *decimal.Decimal
	Unit     string
}

type UpdateItemInput struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Quantity *decimal.Decimal
	Unit     *string
}

type SearchItemsInput struct {
	Name     string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// 作成
func (u *ItemUsecase) Create(ctx context.Context, in CreateItemInput) (model.Item, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" || in.Price == nil || in.Quantity == nil {
		return model.Item{}, errValidation("name, category, price and quantity are required")
	}
	if err := validatePrice(*in.Price); err != nil {
		return model.Item{}, err
	}
	unit, ok := model.ParseUnit(in.Unit)
	if !ok {
		return model.Item{}, errValidation("invalid unit")
	}
	if err := validateStock(*in.Quantity, unit); err != nil {
		return model.Item{}, err
	}

	//名前の重複
	_, err := u.items.FindByName(ctx, name)
	if err == nil {
		return model.Item{}, errConflict("sweet with this name already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		u.log.ErrorContext(ctx, "create item: find by name", "name", name, "err", err)
		return model.Item{}, errInternal()
	}

	created, err := u.items.Create(ctx, model.Item{
		Name:     name,
		Category: category,
		Price:    *in.Price,
		Quantity: *in.Quantity,
		Unit:     unit,
	})
	//事前チェックをすり抜けた同時作成もここで409になる
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Item{}, errConflict("sweet with this name already exists")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "create item", "name", name, "err", err)
		return model.Item{}, errInternal()
	}

	//保存後に作るので、一覧時の掃除に消されない
	u.categories.EnsureExists(ctx, created.Category)
	return created, nil
}

// 全件
func (u *ItemUsecase) List(ctx context.Context) ([]model.Item, error) {
	items, err := u.items.List(ctx)
	if err != nil {
		u.log.ErrorContext(ctx, "list items", "err", err)
		return nil, errInternal()
	}
	return withDefaultUnit(items), nil
}

// 検索（条件はすべて任意・AND）
func (u *ItemUsecase) Search(ctx context.Context, in SearchItemsInput) ([]model.Item, error) {
	items, err := u.items.Search(ctx, repo.ItemSearchQuery{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	})
	if err != nil {
		u.log.ErrorContext(ctx, "search items", "err", err)
		return nil, errInternal()
	}
	return withDefaultUnit(items), nil
}

// 部分更新
func (u *ItemUsecase) Update(ctx context.Context, id string, in UpdateItemInput) (model.Item, error) {
	var patch repo.ItemPatch

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return model.Item{}, errValidation("name must not be empty")
		}
		patch.Name = &n
	}
	if in.Category != nil {
		c := strings.TrimSpace(*in.Category)
		if c == "" {
			return model.Item{}, errValidation("category must not be empty")
		}
		patch.Category = &c
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return model.Item{}, err
		}
		patch.Price = in.Price
	}
	if in.Unit != nil {
		unit, ok := model.ParseUnit(*in.Unit)
		if !ok || strings.TrimSpace(*in.Unit) == "" {
			return model.Item{}, errValidation("invalid unit")
		}
		patch.Unit = &unit
	}
	patch.Quantity = in.Quantity

	if patch.Empty() {
		return model.Item{}, errValidation("at least one field is required to update")
	}

	existing, err := u.items.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Item{}, errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "update item: find", "item_id", id, "err", err)
		return model.Item{}, errInternal()
	}

	//数量は「更新後の単位」で判定する
	unit := existing.Unit.OrDefault()
	if patch.Unit != nil {
		unit = *patch.Unit
	}
	quantity := existing.Quantity
	if patch.Quantity != nil {
		quantity = *patch.Quantity
	}
	if err := validateStock(quantity, unit); err != nil {
		return model.Item{}, err
	}

	//名前の重複（自分以外）
	if patch.Name != nil && *patch.Name != existing.Name {
		other, err := u.items.FindByName(ctx, *patch.Name)
		if err == nil && other.ID != existing.ID {
			return model.Item{}, errConflict("sweet with this name already exists")
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			u.log.ErrorContext(ctx, "update item: find by name", "name", *patch.Name, "err", err)
			return model.Item{}, errInternal()
		}
	}

	updated, err := u.items.Update(ctx, existing.ID, patch)
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Item{}, errConflict("sweet with this name already exists")
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Item{}, errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "update item", "item_id", id, "err", err)
		return model.Item{}, errInternal()
	}
	if patch.Category != nil && *patch.Category != existing.Category {
		u.categories.EnsureExists(ctx, updated.Category)
	}

	updated.Unit = updated.Unit.OrDefault()
	return updated, nil
}

// 削除。カテゴリーが使われなくなったら一緒に消す。
func (u *ItemUsecase) Delete(ctx context.Context, id string) error {
	it, err := u.items.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "delete item: find", "item_id", id, "err", err)
		return errInternal()
	}

	err = u.items.Delete(ctx, it.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return errNotFound("sweet not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "delete item", "item_id", id, "err", err)
		return errInternal()
	}

	u.categories.CleanupIfUnused(ctx, it.Category)
	return nil
}

// unitがない古いデータはpiece
func withDefaultUnit(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, it := range items {
		it.Unit = it.Unit.OrDefault()
		out[i] = it
	}
	return out
}

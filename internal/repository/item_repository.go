package repository

import (
	"context"

	"sweetshop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 検索条件（すべて任意・AND）
type ItemSearchQuery struct {
	Name     string           // 部分一致（大文字小文字無視）
	Category string           // 完全一致（大文字小文字無視）
	MinPrice *decimal.Decimal // 以上
	MaxPrice *decimal.Decimal // 以下
}

// 部分更新。nilのフィールドは触らない。
type ItemPatch struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Quantity *decimal.Decimal
	Unit     *model.Unit
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.Quantity == nil && p.Unit == nil
}

// アイテムの永続化を約束。
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	Search(ctx context.Context, q ItemSearchQuery) ([]model.Item, error)
	FindByID(ctx context.Context, id string) (model.Item, error)
	// 名前の完全一致で1件取得
	FindByName(ctx context.Context, name string) (model.Item, error)

	// 名前重複はErrDuplicate
	Create(ctx context.Context, it model.Item) (model.Item, error)
	Update(ctx context.Context, id string, patch ItemPatch) (model.Item, error)
	Delete(ctx context.Context, id string) error

	// カテゴリー名（大文字小文字無視）を参照しているアイテム数
	CountByCategory(ctx context.Context, category string) (int64, error)
	// 使われているカテゴリー文字列（重複なし）
	DistinctCategories(ctx context.Context) ([]string, error)
	// oldNameを参照している全アイテムをnewNameに書き換える
	RenameCategory(ctx context.Context, oldName string, newName string) (int64, error)
}

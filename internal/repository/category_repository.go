package repository

import (
	"context"

	"sweetshop/internal/domain/model"
)

// カテゴリーの永続化を約束。
type CategoryRepository interface {
	// 名前順
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id string) (model.Category, error)
	// 名前（大文字小文字無視）で1件取得
	FindByName(ctx context.Context, name string) (model.Category, error)

	// 名前重複はErrDuplicate
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Rename(ctx context.Context, id string, name string) (model.Category, error)
	Delete(ctx context.Context, id string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

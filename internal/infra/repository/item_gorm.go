package repository

import (
	"context"
	"strings"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// カテゴリー名を大文字小文字無視で比較する条件
const categoryMatch = "LOWER(TRIM(category)) = LOWER(TRIM(?))"

// 全件
func (r *ItemGormRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("created_at asc").Order("id asc").Find(&items).Error; err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

// 名前/カテゴリー/価格帯で検索
func (r *ItemGormRepository) Search(ctx context.Context, q repo.ItemSearchQuery) ([]model.Item, error) {
	tx := r.db.WithContext(ctx).Model(&model.Item{})

	// name 部分一致
	if name := strings.TrimSpace(q.Name); name != "" {
		tx = tx.Where(`name ILIKE ? ESCAPE '\'`, containsPattern(name))
	}

	// category 完全一致
	if cat := strings.TrimSpace(q.Category); cat != "" {
		tx = tx.Where(categoryMatch, cat)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	var items []model.Item
	if err := tx.Order("name asc").Find(&items).Error; err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

// IDで取得
func (r *ItemGormRepository) FindByID(ctx context.Context, id string) (model.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Item{}, repo.ErrNotFound
	}
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return model.Item{}, translate(err)
	}
	return it, nil
}

// 名前で取得
func (r *ItemGormRepository) FindByName(ctx context.Context, name string) (model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&it).Error; err != nil {
		return model.Item{}, translate(err)
	}
	return it, nil
}

// 作成
func (r *ItemGormRepository) Create(ctx context.Context, it model.Item) (model.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&it).Error; err != nil {
		return model.Item{}, translate(err)
	}
	return it, nil
}

// 渡されたフィールドだけ更新して、更新後の行を返す
func (r *ItemGormRepository) Update(ctx context.Context, id string, patch repo.ItemPatch) (model.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Item{}, repo.ErrNotFound
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}

	var it model.Item
	res := r.db.WithContext(ctx).
		Model(&it).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return model.Item{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Item{}, repo.ErrNotFound
	}
	return it, nil
}

// 削除
func (r *ItemGormRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repo.ErrNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カテゴリーを参照しているアイテム数
func (r *ItemGormRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where(categoryMatch, category).
		Count(&n).Error
	return n, err
}

// 使われているカテゴリー文字列
func (r *ItemGormRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Distinct("category").
		Pluck("category", &cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// カテゴリー名の一括書き換え
func (r *ItemGormRepository) RenameCategory(ctx context.Context, oldName string, newName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where(categoryMatch, oldName).
		Update("category", newName)
	return res.RowsAffected, res.Error
}

package repository

import (
	"context"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// 名前順
func (r *CategoryGormRepository) List(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&cats).Error; err != nil {
		return []model.Category{}, err
	}
	return cats, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, id string) (model.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Category{}, repo.ErrNotFound
	}
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return model.Category{}, translate(err)
	}
	return c, nil
}

// 大文字小文字無視で名前検索
func (r *CategoryGormRepository) FindByName(ctx context.Context, name string) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(TRIM(?))", name).
		First(&c).Error
	if err != nil {
		return model.Category{}, translate(err)
	}
	return c, nil
}

// 作成（LOWER(name)のユニークインデックスで重複を弾く）
func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Category{}, translate(err)
	}
	return c, nil
}

// 名前変更
func (r *CategoryGormRepository) Rename(ctx context.Context, id string, name string) (model.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Category{}, repo.ErrNotFound
	}
	var c model.Category
	res := r.db.WithContext(ctx).
		Model(&c).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return model.Category{}, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Category{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *CategoryGormRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repo.ErrNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// まとめて削除（孤立カテゴリーの掃除用）
func (r *CategoryGormRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Category{})
	return res.RowsAffected, res.Error
}

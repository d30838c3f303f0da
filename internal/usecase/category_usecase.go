package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"
)

// カテゴリーの存在・一意性と、アイテムのカテゴリー文字列との整合を持つ。
// 整合のための後処理はすべてベストエフォート（ログに残して握りつぶす）。
type CategoryUsecase struct {
	categories repo.CategoryRepository
	items      repo.ItemRepository
	rec        Recorder
	log        *slog.Logger
}

// DI
func NewCategoryUsecase(
	categories repo.CategoryRepository,
	items repo.ItemRepository,
	rec Recorder,
	log *slog.Logger,
) *CategoryUsecase {
	return &CategoryUsecase{
		categories: categories,
		items:      items,
		rec:        orNop(rec),
		log:        orDiscard(log),
	}
}

// 一覧。返す前に孤立カテゴリーを掃除する。
func (u *CategoryUsecase) List(ctx context.Context) ([]model.Category, error) {
	if err := u.sweepOrphans(ctx); err != nil {
		u.rec.BookkeepingFailed("orphan_sweep")
		u.log.WarnContext(ctx, "list categories: cleanup failed", "err", err)
	}

	cats, err := u.categories.List(ctx)
	if err != nil {
		u.log.ErrorContext(ctx, "list categories", "err", err)
		return nil, errInternal()
	}
	return cats, nil
}

// どのアイテムにも使われていないカテゴリーを消す
func (u *CategoryUsecase) sweepOrphans(ctx context.Context) error {
	used, err := u.items.DistinctCategories(ctx)
	if err != nil {
		return err
	}
	inUse := make(map[string]bool, len(used))
	for _, c := range used {
		if k := model.CategoryKey(c); k != "" {
			inUse[k] = true
		}
	}

	all, err := u.categories.List(ctx)
	if err != nil {
		return err
	}
	var orphans []string
	for _, c := range all {
		if !inUse[model.CategoryKey(c.Name)] {
			orphans = append(orphans, c.ID)
		}
	}
	if len(orphans) == 0 {
		return nil
	}

	n, err := u.categories.DeleteByIDs(ctx, orphans)
	if err != nil {
		return err
	}
	u.rec.OrphansRemoved(int(n))
	return nil
}

// 作成（大文字小文字違いも重複扱い）
func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return model.Category{}, errValidation("name is required")
	}

	_, err := u.categories.FindByName(ctx, n)
	if err == nil {
		return model.Category{}, errConflict("category already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		u.log.ErrorContext(ctx, "create category: find by name", "name", n, "err", err)
		return model.Category{}, errInternal()
	}

	created, err := u.categories.Create(ctx, model.Category{Name: n})
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Category{}, errConflict("category already exists")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "create category", "name", n, "err", err)
		return model.Category{}, errInternal()
	}
	return created, nil
}

// 名前変更。旧名を使っているアイテムも新名に書き換える。
func (u *CategoryUsecase) Rename(ctx context.Context, id string, name string) (model.Category, error) {
	newName := strings.TrimSpace(name)
	if newName == "" {
		return model.Category{}, errValidation("name is required")
	}

	cat, err := u.categories.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, errNotFound("category not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "rename category: find", "category_id", id, "err", err)
		return model.Category{}, errInternal()
	}

	//自分以外に同名（大文字小文字無視）があれば409
	dup, err := u.categories.FindByName(ctx, newName)
	if err == nil && dup.ID != cat.ID {
		return model.Category{}, errConflict("category already exists")
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		u.log.ErrorContext(ctx, "rename category: find by name", "name", newName, "err", err)
		return model.Category{}, errInternal()
	}

	oldName := cat.Name
	renamed, err := u.categories.Rename(ctx, cat.ID, newName)
	if errors.Is(err, repo.ErrDuplicate) {
		return model.Category{}, errConflict("category already exists")
	}
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, errNotFound("category not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "rename category", "category_id", id, "err", err)
		return model.Category{}, errInternal()
	}

	//アイテム側の書き換え（失敗しても名前変更は確定済み）
	if _, err := u.items.RenameCategory(ctx, oldName, newName); err != nil {
		u.rec.BookkeepingFailed("rename_cascade")
		u.log.WarnContext(ctx, "rename category: failed to update items",
			"old_name", oldName, "new_name", newName, "err", err)
	}

	return renamed, nil
}

// 削除。使っているアイテムがあれば400。
func (u *CategoryUsecase) Delete(ctx context.Context, id string) error {
	cat, err := u.categories.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return errNotFound("category not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "delete category: find", "category_id", id, "err", err)
		return errInternal()
	}

	n, err := u.items.CountByCategory(ctx, cat.Name)
	if err != nil {
		u.log.ErrorContext(ctx, "delete category: count items", "name", cat.Name, "err", err)
		return errInternal()
	}
	if n > 0 {
		return errValidation("cannot delete category in use by sweets")
	}

	err = u.categories.Delete(ctx, cat.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return errNotFound("category not found")
	}
	if err != nil {
		u.log.ErrorContext(ctx, "delete category", "category_id", id, "err", err)
		return errInternal()
	}
	return nil
}

// アイテム作成・更新時にカテゴリーがなければ作る。失敗しても呼び出し元は止めない。
func (u *CategoryUsecase) EnsureExists(ctx context.Context, name string) {
	n := strings.TrimSpace(name)
	if n == "" {
		return
	}

	_, err := u.categories.FindByName(ctx, n)
	if err == nil {
		return
	}
	if !errors.Is(err, repo.ErrNotFound) {
		u.rec.BookkeepingFailed("ensure_category")
		u.log.WarnContext(ctx, "ensure category: lookup failed", "name", n, "err", err)
		return
	}

	//同時作成で負けた場合はもう存在しているのでOK
	_, err = u.categories.Create(ctx, model.Category{Name: n})
	if err != nil && !errors.Is(err, repo.ErrDuplicate) {
		u.rec.BookkeepingFailed("ensure_category")
		u.log.WarnContext(ctx, "ensure category: create failed", "name", n, "err", err)
	}
}

// アイテム削除後、そのカテゴリーを使うアイテムがなくなっていれば消す
func (u *CategoryUsecase) CleanupIfUnused(ctx context.Context, name string) {
	n, err := u.items.CountByCategory(ctx, name)
	if err != nil {
		u.rec.BookkeepingFailed("cleanup_category")
		u.log.WarnContext(ctx, "cleanup category: count failed", "name", name, "err", err)
		return
	}
	if n > 0 {
		return
	}

	cat, err := u.categories.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return
	}
	if err == nil {
		err = u.categories.Delete(ctx, cat.ID)
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		u.rec.BookkeepingFailed("cleanup_category")
		u.log.WarnContext(ctx, "cleanup category: delete failed", "name", name, "err", err)
	}
}

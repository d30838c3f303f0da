package memstore

import (
	"context"
	"sort"
	"strings"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"
)

type itemRepository struct {
	s *Store
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sortedItems(nil), nil
}

func (r *itemRepository) Search(ctx context.Context, q repo.ItemSearchQuery) ([]model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	name := strings.ToLower(strings.TrimSpace(q.Name))
	cat := strings.TrimSpace(q.Category)

	out := r.s.sortedItems(func(it model.Item) bool {
		if name != "" && !strings.Contains(strings.ToLower(it.Name), name) {
			return false
		}
		if cat != "" && !model.SameCategory(it.Category, cat) {
			return false
		}
		if q.MinPrice != nil && it.Price.LessThan(*q.MinPrice) {
			return false
		}
		if q.MaxPrice != nil && it.Price.GreaterThan(*q.MaxPrice) {
			return false
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[id]
	if !ok {
		return model.Item{}, repo.ErrNotFound
	}
	return it, nil
}

func (r *itemRepository) FindByName(ctx context.Context, name string) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range r.s.items {
		if it.Name == name {
			return it, nil
		}
	}
	return model.Item{}, repo.ErrNotFound
}

// 名前の重複チェック（完全一致、exceptIDは除外）
func (r *itemRepository) nameTaken(name string, exceptID string) bool {
	for id, it := range r.s.items {
		if id != exceptID && it.Name == name {
			return true
		}
	}
	return false
}

func (r *itemRepository) Create(ctx context.Context, it model.Item) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nameTaken(it.Name, "") {
		return model.Item{}, repo.ErrDuplicate
	}
	if it.ID == "" {
		it.ID = newID()
	}
	if it.Unit == "" {
		it.Unit = model.UnitPiece
	}
	now := r.s.now()
	it.CreatedAt = now
	it.UpdatedAt = now
	r.s.items[it.ID] = it
	r.s.nextSeq++
	r.s.seq[it.ID] = r.s.nextSeq
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, id string, patch repo.ItemPatch) (model.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	it, ok := r.s.items[id]
	if !ok {
		return model.Item{}, repo.ErrNotFound
	}
	if patch.Empty() {
		return it, nil
	}
	if patch.Name != nil {
		if r.nameTaken(*patch.Name, id) {
			return model.Item{}, repo.ErrDuplicate
		}
		it.Name = *patch.Name
	}
	if patch.Category != nil {
		it.Category = *patch.Category
	}
	if patch.Price != nil {
		it.Price = *patch.Price
	}
	if patch.Quantity != nil {
		it.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		it.Unit = *patch.Unit
	}
	it.UpdatedAt = r.s.now()
	r.s.items[id] = it
	return it, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.items, id)
	delete(r.s.seq, id)
	return nil
}

func (r *itemRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, it := range r.s.items {
		if model.SameCategory(it.Category, category) {
			n++
		}
	}
	return n, nil
}

func (r *itemRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seen := map[string]bool{}
	out := []string{}
	for _, it := range r.s.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (r *itemRepository) RenameCategory(ctx context.Context, oldName string, newName string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	now := r.s.now()
	for id, it := range r.s.items {
		if model.SameCategory(it.Category, oldName) {
			it.Category = newName
			it.UpdatedAt = now
			r.s.items[id] = it
			n++
		}
	}
	return n, nil
}

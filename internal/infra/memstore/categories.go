package memstore

import (
	"context"
	"sort"
	"strings"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"
)

type categoryRepository struct {
	s *Store
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]model.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return model.Category{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c, ok := r.byName(name, ""); ok {
		return c, nil
	}
	return model.Category{}, repo.ErrNotFound
}

// LOWER(name)のユニークインデックス相当
func (r *categoryRepository) byName(name string, exceptID string) (model.Category, bool) {
	key := strings.ToLower(name)
	for id, c := range r.s.categories {
		if id != exceptID && strings.ToLower(c.Name) == key {
			return c, true
		}
	}
	return model.Category{}, false
}

func (r *categoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.byName(c.Name, ""); taken {
		return model.Category{}, repo.ErrDuplicate
	}
	if c.ID == "" {
		c.ID = newID()
	}
	now := r.s.now()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.s.categories[c.ID] = c
	return c, nil
}

func (r *categoryRepository) Rename(ctx context.Context, id string, name string) (model.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[id]
	if !ok {
		return model.Category{}, repo.ErrNotFound
	}
	if _, taken := r.byName(name, id); taken {
		return model.Category{}, repo.ErrDuplicate
	}
	c.Name = name
	c.UpdatedAt = r.s.now()
	r.s.categories[id] = c
	return c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.s.categories, id)
	return nil
}

func (r *categoryRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := r.s.categories[id]; ok {
			delete(r.s.categories, id)
			n++
		}
	}
	return n, nil
}

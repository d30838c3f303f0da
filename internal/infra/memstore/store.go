// Package memstore は repository の約束をプロセス内メモリで実装する。
// 1つのmutexで全体を守るので、各操作はDBの1文と同じく原子的になる。
package memstore

import (
	"sort"
	"sync"
	"time"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.Mutex
	items      map[string]model.Item
	categories map[string]model.Category
	seq        map[string]int64 // 作成順
	nextSeq    int64
	now        func() time.Time

	itemRepo      *itemRepository
	inventoryRepo *inventoryRepository
	categoryRepo  *categoryRepository
}

func New() *Store {
	s := &Store{
		items:      map[string]model.Item{},
		categories: map[string]model.Category{},
		seq:        map[string]int64{},
		now:        time.Now,
	}
	s.itemRepo = &itemRepository{s: s}
	s.inventoryRepo = &inventoryRepository{s: s}
	s.categoryRepo = &categoryRepository{s: s}
	return s
}

func (s *Store) Items() repo.ItemRepository          { return s.itemRepo }
func (s *Store) Inventory() repo.InventoryRepository { return s.inventoryRepo }
func (s *Store) Categories() repo.CategoryRepository { return s.categoryRepo }

func newID() string {
	return uuid.NewString()
}

// 作成順に並べたアイテム
func (s *Store) sortedItems(keep func(model.Item) bool) []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.seq[out[i].ID] < s.seq[out[j].ID] })
	return out
}

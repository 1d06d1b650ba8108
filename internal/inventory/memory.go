// internal/inventory/memory.go
package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and local runs.
// It preserves insertion order, which defines the "storage order" the views
// fall back to on sort ties.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	foods map[uuid.UUID]*Food
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		foods: make(map[uuid.UUID]*Food),
	}
}

func copyFood(f *Food) *Food {
	out := *f
	if f.DonatedDate != nil {
		d := *f.DonatedDate
		out.DonatedDate = &d
	}
	return &out
}

func (r *MemoryRepository) FetchAll(ctx context.Context) ([]*Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foods := make([]*Food, 0, len(r.order))
	for _, id := range r.order {
		foods = append(foods, copyFood(r.foods[id]))
	}
	return foods, nil
}

func (r *MemoryRepository) FetchByID(ctx context.Context, id uuid.UUID) (*Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	food, ok := r.foods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyFood(food), nil
}

func (r *MemoryRepository) Save(ctx context.Context, food *Food) (*Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}
	if _, ok := r.foods[food.ID]; !ok {
		r.order = append(r.order, food.ID)
	}
	r.foods[food.ID] = copyFood(food)
	return copyFood(food), nil
}

func (r *MemoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[id]; !ok {
		return false, nil
	}
	delete(r.foods, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *MemoryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.foods[id]
	return ok, nil
}

func (r *MemoryRepository) FetchByNameContaining(ctx context.Context, name string) ([]*Food, error) {
	all, _ := r.FetchAll(ctx)
	q := strings.ToLower(name)

	out := make([]*Food, 0, len(all))
	for _, f := range all {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *MemoryRepository) FetchByCategory(ctx context.Context, category string) ([]*Food, error) {
	all, _ := r.FetchAll(ctx)

	out := make([]*Food, 0, len(all))
	for _, f := range all {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out, nil
}

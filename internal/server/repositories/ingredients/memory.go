package ingredients

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// MemoryRepository is the in-process catalog used by the memory store and
// in tests. Returned items are copies; callers may modify them freely.
//
// Items are kept in insertion order. Ids come from a counter that only
// grows, so a deleted ingredient's id is never handed out again.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*models.Ingredient
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty catalog whose first item gets id 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[int64]*models.Ingredient),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error) {
	item := &models.Ingredient{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		Category:    in.Category,
		ImageURL:    copyString(in.ImageURL),
		InStock:     in.InStockOrDefault(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	item.CreatedAt = r.now()
	r.nextID++

	r.byID[item.ID] = item
	r.order = append(r.order, item.ID)

	return clone(item), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(item), nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Ingredient, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, clone(r.byID[id]))
	}
	return result, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, in models.NewIngredient) (*models.Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Unit = in.Unit
	item.Category = in.Category
	item.ImageURL = copyString(in.ImageURL)
	item.InStock = in.InStockOrDefault()

	return clone(item), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return nil
}

func clone(i *models.Ingredient) *models.Ingredient {
	c := *i
	c.ImageURL = copyString(i.ImageURL)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

package recipes

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// MemoryRepository holds recipes in process memory. Stored recipes are
// never shared with callers: every read and write goes through Clone.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*models.Recipe
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty repository; ids start at 1 and only
// ever grow.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[int64]*models.Recipe),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error) {
	recipe := fromInput(in)
	recipe.AuthorID = in.AuthorID

	r.mu.Lock()
	defer r.mu.Unlock()

	recipe.ID = r.nextID
	recipe.CreatedAt = r.now()
	r.nextID++

	r.byID[recipe.ID] = recipe
	r.order = append(r.order, recipe.ID)

	return recipe.Clone(), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return recipe.Clone(), nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.Recipe, error) {
	return r.filter(func(*models.Recipe) bool { return true }), nil
}

func (r *MemoryRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*models.Recipe, error) {
	return r.filter(func(rc *models.Recipe) bool { return rc.AuthorID == authorID }), nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

func (r *MemoryRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.byID[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	recipe.ViewCount++
	return recipe.ViewCount, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, in models.NewRecipe) (*models.Recipe, error) {
	updated := fromInput(in)

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	updated.ID = current.ID
	updated.AuthorID = current.AuthorID
	updated.ViewCount = current.ViewCount
	updated.CreatedAt = current.CreatedAt
	r.byID[id] = updated

	return updated.Clone(), nil
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

// fromInput builds an unsaved recipe owning copies of in's slices.
func fromInput(in models.NewRecipe) *models.Recipe {
	recipe := &models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Steps(),
		Ingredients:  slices.Clone(in.Ingredients),
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Difficulty:   in.Difficulty,
		Hashtags:     slices.Clone(in.Hashtags),
	}
	if in.ImageURL != nil {
		img := *in.ImageURL
		recipe.ImageURL = &img
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.RecipeIngredient{}
	}
	if recipe.Hashtags == nil {
		recipe.Hashtags = []string{}
	}
	return recipe
}

func (r *MemoryRepository) filter(match func(*models.Recipe) bool) []*models.Recipe {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Recipe, 0, len(r.order))
	for _, id := range r.order {
		if rc := r.byID[id]; match(rc) {
			result = append(result, rc.Clone())
		}
	}
	return result
}

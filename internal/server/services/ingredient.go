package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"golang.org/x/text/cases"
)

// IngredientFilter narrows IngredientService.List. MinPrice and MaxPrice
// are inclusive bounds; nil leaves that side open.
type IngredientFilter struct {
	Keyword     string
	Category    string
	InStockOnly bool
	MinPrice    *int64
	MaxPrice    *int64
}

// IngredientService manages the shop catalog. Reads are public; changes to
// existing items are reserved for corporate accounts.
type IngredientService struct {
	repomanager repomanager.RepositoryManager
}

func NewIngredientService(m repomanager.RepositoryManager) *IngredientService {
	return &IngredientService{repomanager: m}
}

func (s *IngredientService) Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error) {
	in, err := prepareIngredient(in)
	if err != nil {
		return nil, err
	}

	item, err := s.repomanager.Ingredients().Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating ingredient: %w", err)
	}
	return item, nil
}

// Update replaces item id. A nil InStock keeps the current stock flag.
func (s *IngredientService) Update(ctx context.Context, editor *models.User, id int64, in models.NewIngredient) (*models.Ingredient, error) {
	if err := requireCorporate(editor); err != nil {
		return nil, err
	}
	in, err := prepareIngredient(in)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Ingredients()
	current, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.InStock == nil {
		in.InStock = &current.InStock
	}

	item, err := repo.Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating ingredient: %w", err)
	}
	return item, nil
}

func (s *IngredientService) Delete(ctx context.Context, editor *models.User, id int64) error {
	if err := requireCorporate(editor); err != nil {
		return err
	}
	return s.repomanager.Ingredients().Delete(ctx, id)
}

func (s *IngredientService) Get(ctx context.Context, id int64) (*models.Ingredient, error) {
	return s.repomanager.Ingredients().GetByID(ctx, id)
}

// List returns the catalog in insertion order, filtered by f. Category
// matches case-insensitively; Keyword is searched in name and description.
func (s *IngredientService) List(ctx context.Context, f IngredientFilter) ([]*models.Ingredient, error) {
	if err := validatePriceRange(f.MinPrice, f.MaxPrice); err != nil {
		return nil, err
	}

	all, err := s.repomanager.Ingredients().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	keyword := fold.String(strings.TrimSpace(f.Keyword))
	category := fold.String(strings.TrimSpace(f.Category))

	result := make([]*models.Ingredient, 0, len(all))
	for _, item := range all {
		if f.InStockOnly && !item.InStock {
			continue
		}
		if f.MinPrice != nil && item.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && item.Price > *f.MaxPrice {
			continue
		}
		if category != "" && fold.String(item.Category) != category {
			continue
		}
		if keyword != "" &&
			!strings.Contains(fold.String(item.Name), keyword) &&
			!strings.Contains(fold.String(item.Description), keyword) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// PriceRange returns the items priced between minPrice and maxPrice, both
// inclusive.
func (s *IngredientService) PriceRange(ctx context.Context, minPrice, maxPrice int64) ([]*models.Ingredient, error) {
	return s.List(ctx, IngredientFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
}

func prepareIngredient(in models.NewIngredient) (models.NewIngredient, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Category = strings.TrimSpace(in.Category)

	switch {
	case in.Name == "":
		return in, validationError("name is required")
	case in.Unit == "":
		return in, validationError("unit is required")
	case in.Price < 0:
		return in, validationError("price must not be negative")
	}
	return in, nil
}

func validatePriceRange(lo, hi *int64) error {
	switch {
	case lo != nil && *lo < 0, hi != nil && *hi < 0:
		return validationError("price bounds must not be negative")
	case lo != nil && hi != nil && *lo > *hi:
		return validationError("minPrice %d is above maxPrice %d", *lo, *hi)
	}
	return nil
}

func requireCorporate(u *models.User) error {
	if u == nil {
		return common.ErrorUnauthorized
	}
	if !u.IsCorporate {
		return fmt.Errorf("%w: corporate account required", common.ErrorForbidden)
	}
	return nil
}

// Package ingredients stores the shop catalog of ingredients.
package ingredients

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// Repository is the ingredient catalog. It only does id lookups; search
// and price filtering belong to the ingredient service.
type Repository interface {
	Create(ctx context.Context, ingredient models.NewIngredient) (*models.Ingredient, error)
	// GetByID returns common.ErrorNotFound for an unknown id.
	GetByID(ctx context.Context, id int64) (*models.Ingredient, error)
	// GetAll returns the catalog in id order.
	GetAll(ctx context.Context) ([]*models.Ingredient, error)
	Count(ctx context.Context) (int64, error)
	// Update replaces every editable field of item id; a nil InStock means
	// true, as on Create.
	Update(ctx context.Context, id int64, ingredient models.NewIngredient) (*models.Ingredient, error)
	Delete(ctx context.Context, id int64) error
}

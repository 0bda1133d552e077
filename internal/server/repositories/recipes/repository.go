// Package recipes stores recipes together with their ordered ingredient
// lines and cooking steps.
package recipes

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// Repository is the recipe collection. Recipes come back whole, with
// ingredient lines and steps in stored order. A missing id is
// common.ErrorNotFound; list methods return recipes in id order.
type Repository interface {
	// Create stores the recipe and its children atomically. Step indexes
	// are reassigned 1..n and the view count starts at 0.
	Create(ctx context.Context, recipe models.NewRecipe) (*models.Recipe, error)
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	GetAll(ctx context.Context) ([]*models.Recipe, error)
	GetByAuthor(ctx context.Context, authorID int64) ([]*models.Recipe, error)
	Count(ctx context.Context) (int64, error)
	// IncrementViewCount bumps the counter and returns the new value.
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
	// Update replaces the content of recipe id, children included. The
	// author, view count and creation time are kept.
	Update(ctx context.Context, id int64, recipe models.NewRecipe) (*models.Recipe, error)
	// Delete removes the recipe and its children. The id is retired.
	Delete(ctx context.Context, id int64) error
}

package models

import "time"

// Ingredient is a catalog item. Price is in the smallest currency unit.
type Ingredient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category,omitempty"`
	ImageURL    *string   `json:"imageUrl"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewIngredient is the input to ingredients.Repository.Create and Update.
// A nil InStock means true.
type NewIngredient struct {
	Name        string
	Description string
	Price       int64
	Unit        string
	Category    string
	ImageURL    *string
	InStock     *bool
}

// InStockOrDefault resolves the optional InStock flag.
func (n NewIngredient) InStockOrDefault() bool {
	if n.InStock == nil {
		return true
	}
	return *n.InStock
}

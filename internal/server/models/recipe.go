package models

import (
	"slices"
	"time"
)

// Difficulty grades a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Valid reports whether d is one of the known grades.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// RecipeIngredient is one line of a recipe's ingredient list.
type RecipeIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeStep is one cooking step. StepIndex is 1-based and follows list order.
type RecipeStep struct {
	StepIndex   int     `json:"stepIndex"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type Recipe struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Instructions []RecipeStep       `json:"instructions"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	CookingTime  int                `json:"cookingTime"`
	Servings     int                `json:"servings"`
	Difficulty   Difficulty         `json:"difficulty"`
	ImageURL     *string            `json:"imageUrl"`
	Hashtags     []string           `json:"hashtags"`
	AuthorID     int64              `json:"authorId"`
	ViewCount    int64              `json:"viewCount"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// Clone returns a deep copy of r.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = slices.Clone(r.Ingredients)
	c.Hashtags = slices.Clone(r.Hashtags)
	c.ImageURL = cloneString(r.ImageURL)
	c.Instructions = make([]RecipeStep, len(r.Instructions))
	for i, s := range r.Instructions {
		s.ImageURL = cloneString(s.ImageURL)
		c.Instructions[i] = s
	}
	return &c
}

// NewRecipe is the input to recipes.Repository.Create and Update.
// Instructions are stored in the given order; their StepIndex values are
// reassigned 1..n. Update ignores AuthorID.
type NewRecipe struct {
	Title        string
	Description  string
	Instructions []RecipeStep
	Ingredients  []RecipeIngredient
	CookingTime  int
	Servings     int
	Difficulty   Difficulty
	ImageURL     *string
	Hashtags     []string
	AuthorID     int64
}

// Steps returns the instructions numbered 1..n in list order.
func (n NewRecipe) Steps() []RecipeStep {
	steps := make([]RecipeStep, len(n.Instructions))
	for i, s := range n.Instructions {
		steps[i] = RecipeStep{StepIndex: i + 1, Description: s.Description, ImageURL: cloneString(s.ImageURL)}
	}
	return steps
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

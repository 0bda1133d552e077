package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeClone_IsDeep(t *testing.T) {
	img := "a.jpg"
	stepImg := "s.jpg"
	r := &Recipe{
		ID:           1,
		Ingredients:  []RecipeIngredient{{Name: "kimchi", Amount: "200g"}},
		Instructions: []RecipeStep{{StepIndex: 1, Description: "boil", ImageURL: &stepImg}},
		Hashtags:     []string{"korean"},
		ImageURL:     &img,
	}

	c := r.Clone()
	c.Ingredients[0].Name = "changed"
	c.Hashtags[0] = "changed"
	*c.ImageURL = "changed"
	*c.Instructions[0].ImageURL = "changed"

	assert.Equal(t, "kimchi", r.Ingredients[0].Name)
	assert.Equal(t, "korean", r.Hashtags[0])
	assert.Equal(t, "a.jpg", *r.ImageURL)
	assert.Equal(t, "s.jpg", *r.Instructions[0].ImageURL)
}

func TestNewRecipe_StepsAreRenumbered(t *testing.T) {
	n := NewRecipe{Instructions: []RecipeStep{{StepIndex: 7, Description: "boil"}, {Description: "serve"}}}

	steps := n.Steps()

	assert.Equal(t, []RecipeStep{{StepIndex: 1, Description: "boil"}, {StepIndex: 2, Description: "serve"}}, steps)
}

func TestDefaults(t *testing.T) {
	no := false
	assert.True(t, NewIngredient{}.InStockOrDefault())
	assert.False(t, NewIngredient{InStock: &no}.InStockOrDefault())
	assert.Equal(t, BoardPostGeneral, NewBoardPost{}.TypeOrDefault())
	assert.Equal(t, BoardPostNotice, NewBoardPost{Type: BoardPostNotice}.TypeOrDefault())
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("easy").Valid())
	assert.True(t, BoardPostQnA.Valid())
	assert.False(t, BoardPostType("BLOG").Valid())
}

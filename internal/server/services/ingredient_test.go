package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientService_CreateValidation(t *testing.T) {
	s := NewIngredientService(repomanager.NewInMemoryRepositoryManager())

	for _, in := range []models.NewIngredient{
		{Name: " ", Unit: "kg"},
		{Name: "Tomato", Unit: ""},
		{Name: "Tomato", Unit: "kg", Price: -1},
	} {
		_, err := s.Create(context.Background(), in)
		assert.ErrorIs(t, err, common.ErrorValidation, "%+v", in)
	}
}

func TestIngredientService_List(t *testing.T) {
	s := NewIngredientService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()
	no := false

	for _, in := range []models.NewIngredient{
		{Name: "Tomato", Description: "Fresh tomatoes", Price: 3000, Unit: "kg", Category: "Vegetable"},
		{Name: "Onion", Description: "Sweet onions", Price: 2000, Unit: "kg", Category: "vegetable", InStock: &no},
		{Name: "Rice", Description: "Short grain", Price: 25000, Unit: "10kg", Category: "Grain"},
	} {
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}

	names := func(items []*models.Ingredient) []string {
		out := make([]string, 0, len(items))
		for _, i := range items {
			out = append(out, i.Name)
		}
		return out
	}

	all, err := s.List(ctx, IngredientFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato", "Onion", "Rice"}, names(all))

	veg, err := s.List(ctx, IngredientFilter{Category: "VEGETABLE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato", "Onion"}, names(veg))

	inStock, err := s.List(ctx, IngredientFilter{Category: "vegetable", InStockOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato"}, names(inStock))

	sweet, err := s.List(ctx, IngredientFilter{Keyword: "sweet"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Onion"}, names(sweet))

	got, err := s.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Rice", got.Name)

	_, err = s.Get(ctx, 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIngredientService_PriceRange(t *testing.T) {
	s := NewIngredientService(repomanager.NewInMemoryRepositoryManager())
	ctx := context.Background()

	for _, in := range []models.NewIngredient{
		{Name: "Tomato", Price: 3000, Unit: "kg"},
		{Name: "Onion", Price: 2000, Unit: "kg"},
		{Name: "Rice", Price: 25000, Unit: "10kg"},
		{Name: "Salt", Price: 0, Unit: "bag"},
	} {
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}

	names := func(items []*models.Ingredient) []string {
		out := make([]string, 0, len(items))
		for _, i := range items {
			out = append(out, i.Name)
		}
		return out
	}
	price := func(v int64) *int64 { return &v }

	got, err := s.PriceRange(ctx, 2000, 3000)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato", "Onion"}, names(got))

	got, err = s.PriceRange(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Salt"}, names(got))

	got, err = s.List(ctx, IngredientFilter{MinPrice: price(2500)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tomato", "Rice"}, names(got))

	got, err = s.List(ctx, IngredientFilter{MaxPrice: price(2000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Onion", "Salt"}, names(got))

	_, err = s.PriceRange(ctx, 3000, 2000)
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = s.List(ctx, IngredientFilter{MinPrice: price(-1)})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestIngredientService_UpdateAndDeleteNeedCorporate(t *testing.T) {
	m := repomanager.NewInMemoryRepositoryManager()
	s := NewIngredientService(m)
	us := newUserService(m)
	member := mustRegister(t, us, "member", false)
	corp := mustRegister(t, us, "corp", true)
	ctx := context.Background()
	no := false

	item, err := s.Create(ctx, models.NewIngredient{Name: "Tomato", Price: 3000, Unit: "kg", InStock: &no})
	require.NoError(t, err)

	edit := models.NewIngredient{Name: " Cherry Tomato ", Price: 4500, Unit: "kg"}

	_, err = s.Update(ctx, nil, item.ID, edit)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, err = s.Update(ctx, member, item.ID, edit)
	assert.ErrorIs(t, err, common.ErrorForbidden)
	_, err = s.Update(ctx, corp, item.ID, models.NewIngredient{Name: "x", Unit: "kg", Price: -5})
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = s.Update(ctx, corp, 99, edit)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err := s.Update(ctx, corp, item.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "Cherry Tomato", got.Name)
	assert.Equal(t, int64(4500), got.Price)
	// stock flag kept when omitted
	assert.False(t, got.InStock)

	assert.ErrorIs(t, s.Delete(ctx, member, item.ID), common.ErrorForbidden)
	require.NoError(t, s.Delete(ctx, corp, item.ID))
	assert.ErrorIs(t, s.Delete(ctx, corp, item.ID), common.ErrorNotFound)

	_, err = s.Get(ctx, item.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

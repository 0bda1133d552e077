package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listIngredients(c *gin.Context) {
	var q ingredientQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, bindError(err))
		return
	}

	items, err := h.ingredients.List(c.Request.Context(), services.IngredientFilter{
		Keyword:     q.Keyword,
		Category:    q.Category,
		InStockOnly: q.InStock,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) ingredientsByPriceRange(c *gin.Context) {
	var q priceRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, bindError(err))
		return
	}
	items, err := h.ingredients.PriceRange(c.Request.Context(), *q.MinPrice, *q.MaxPrice)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) getIngredient(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	item, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, item)
}

func (h *Handler) createIngredient(c *gin.Context) {
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	item, err := h.ingredients.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, item, "ingredient created")
}

func (h *Handler) updateIngredient(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	var req ingredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	item, err := h.ingredients.Update(c.Request.Context(), currentUser(c), id, req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, item, "ingredient updated")
}

func (h *Handler) deleteIngredient(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.ingredients.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "ingredient deleted")
}

package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listRecipes(c *gin.Context) {
	var q recipeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, bindError(err))
		return
	}

	items, total, err := h.recipes.List(c.Request.Context(), services.RecipeFilter{
		Keyword:        q.Keyword,
		Difficulty:     models.Difficulty(q.Difficulty),
		MaxCookingTime: q.MaxCookingTime,
		Sort:           q.Sort,
		Limit:          q.Limit,
		Offset:         q.Offset,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, recipePage{Items: items, Total: total, Limit: q.Limit, Offset: q.Offset})
}

func (h *Handler) bestRecipes(c *gin.Context) {
	var q limitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, bindError(err))
		return
	}
	items, err := h.recipes.Best(c.Request.Context(), q.Limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) getRecipe(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, recipe)
}

func (h *Handler) recipesByAuthor(c *gin.Context) {
	authorID, err := idParam(c, "authorId")
	if err != nil {
		h.fail(c, err)
		return
	}
	items, err := h.recipes.ByAuthor(c.Request.Context(), authorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, items)
}

func (h *Handler) createRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), req.toModel(currentUser(c).ID))
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, recipe, "recipe created")
}

func (h *Handler) updateRecipe(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}

	editor := currentUser(c)
	recipe, err := h.recipes.Update(c.Request.Context(), editor, id, req.toModel(editor.ID))
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, recipe, "recipe updated")
}

func (h *Handler) deleteRecipe(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "recipe deleted")
}

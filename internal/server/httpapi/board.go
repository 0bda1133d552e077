package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listBoardPosts(c *gin.Context) {
	posts, err := h.board.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, posts)
}

func (h *Handler) pinnedBoardPosts(c *gin.Context) {
	posts, err := h.board.Pinned(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, posts)
}

func (h *Handler) getBoardPost(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	post, err := h.board.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, post)
}

func (h *Handler) createBoardPost(c *gin.Context) {
	var req boardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	post, err := h.board.Create(c.Request.Context(), currentUser(c), req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, post, "post created")
}

func (h *Handler) boardPostsByAuthor(c *gin.Context) {
	authorID, err := idParam(c, "authorId")
	if err != nil {
		h.fail(c, err)
		return
	}
	posts, err := h.board.ByAuthor(c.Request.Context(), currentUser(c), authorID)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, posts)
}

func (h *Handler) updateBoardPost(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	var req boardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	post, err := h.board.Update(c.Request.Context(), currentUser(c), id, req.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, post, "post updated")
}

func (h *Handler) deleteBoardPost(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.board.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "post deleted")
}

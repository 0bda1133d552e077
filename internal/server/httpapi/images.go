package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) presignImage(c *gin.Context) {
	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}
	up, err := h.images.PresignUpload(c.Request.Context(), req.ContentType)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, presignResponse{
		Key:         up.Key,
		URL:         up.URL,
		Method:      up.Method,
		ContentType: up.ContentType,
		ExpiresAt:   up.ExpiresAt,
	})
}

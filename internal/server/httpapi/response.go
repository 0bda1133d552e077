package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope of every API reply.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

// statusFor maps service and store errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorUnknownAuthor):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail aborts the request with the envelope for err. Internal errors are
// logged and replaced by a generic message.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), "request failed",
			"method", c.Request.Method, "path", c.FullPath(), "error", err)
		msg = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, Response{Success: false, Error: msg})
}

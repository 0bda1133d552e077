package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}

	user, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		IsCorporate: req.IsCorporate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusCreated, newUserResponse(user), "registered")
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, loginResponse{
		Token:     res.AccessToken,
		ExpiresAt: res.ExpiresAt,
		User:      newUserResponse(res.User),
	})
}

func (h *Handler) me(c *gin.Context) {
	respond(c, http.StatusOK, newUserResponse(currentUser(c)))
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, newUserResponse(user))
}

func (h *Handler) listCorporateUsers(c *gin.Context) {
	users, err := h.users.ListCorporate(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, newUserResponses(users))
}

func (h *Handler) checkUsername(c *gin.Context) {
	exists, err := h.users.UsernameExists(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, existsResponse{Exists: exists})
}

func (h *Handler) checkEmail(c *gin.Context) {
	exists, err := h.users.EmailExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, existsResponse{Exists: exists})
}

func (h *Handler) updateUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, bindError(err))
		return
	}

	user, err := h.users.Update(c.Request.Context(), currentUser(c), id, services.UpdateInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		IsCorporate: req.IsCorporate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, newUserResponse(user), "user updated")
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.fail(c, err)
		return
	}
	respondMessage(c, http.StatusOK, nil, "user deleted")
}

package httpapi

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/gin-gonic/gin"
)

const userContextKey = "recipeshare.user"

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, common.BearerPrefix)
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// authenticate resolves the bearer token into the session user. With
// required set, a missing token is rejected; a malformed or expired one is
// always rejected.
func (h *Handler) authenticate(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		if header == "" {
			if required {
				h.fail(c, common.ErrorUnauthorized)
				return
			}
			c.Next()
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			h.fail(c, common.ErrorUnauthorized)
			return
		}

		user, err := h.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func (h *Handler) requireCorporate(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		h.fail(c, common.ErrorUnauthorized)
		return
	}
	if !user.IsCorporate {
		h.fail(c, common.ErrorForbidden)
		return
	}
	c.Next()
}

// currentUser returns the session user, or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func requestLogger(l logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

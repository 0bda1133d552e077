// Package httpapi exposes the recipeshare services as a JSON API over gin.
package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/dmitrijs2005/recipeshare/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Services groups the dependencies of the API handlers.
type Services struct {
	Users       *services.UserService
	Recipes     *services.RecipeService
	Ingredients *services.IngredientService
	Board       *services.BoardService
	Images      *services.ImageService
	StorageKind string
}

type Handler struct {
	users       *services.UserService
	recipes     *services.RecipeService
	ingredients *services.IngredientService
	board       *services.BoardService
	images      *services.ImageService
	storageKind string
	logger      logging.Logger
}

func NewHandler(s Services, l logging.Logger) *Handler {
	return &Handler{
		users:       s.Users,
		recipes:     s.Recipes,
		ingredients: s.Ingredients,
		board:       s.Board,
		images:      s.Images,
		storageKind: s.StorageKind,
		logger:      l,
	}
}

func (h *Handler) health(c *gin.Context) {
	respond(c, http.StatusOK, healthResponse{Status: "ok", Storage: h.storageKind})
}

// idParam parses a positive int64 path parameter.
func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", common.ErrorValidation, name, c.Param(name))
	}
	return id, nil
}

func bindError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrorValidation, err)
}

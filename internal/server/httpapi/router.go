package httpapi

import (
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	return config
}

// NewRouter builds the gin engine with every API route mounted under /api.
func NewRouter(h *Handler, l logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(l), cors.New(corsConfig()))

	api := r.Group("/api")
	api.GET("/health", h.health)

	requireAuth := h.authenticate(true)
	optionalAuth := h.authenticate(false)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/me", requireAuth, h.me)
	}

	users := api.Group("/users")
	{
		users.GET("/corporate", h.listCorporateUsers)
		users.GET("/check/username/:username", h.checkUsername)
		users.GET("/check/email/:email", h.checkEmail)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", requireAuth, h.updateUser)
		users.DELETE("/:id", requireAuth, h.deleteUser)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.listRecipes)
		recipes.GET("/best", h.bestRecipes)
		recipes.GET("/author/:authorId", h.recipesByAuthor)
		recipes.GET("/:id", h.getRecipe)
		recipes.POST("", requireAuth, h.createRecipe)
		recipes.PUT("/:id", requireAuth, h.updateRecipe)
		recipes.DELETE("/:id", requireAuth, h.deleteRecipe)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", h.listIngredients)
		ingredients.GET("/price-range", h.ingredientsByPriceRange)
		ingredients.GET("/:id", h.getIngredient)
		ingredients.POST("", requireAuth, h.requireCorporate, h.createIngredient)
		ingredients.PUT("/:id", requireAuth, h.requireCorporate, h.updateIngredient)
		ingredients.DELETE("/:id", requireAuth, h.requireCorporate, h.deleteIngredient)
	}

	board := api.Group("/board")
	{
		board.GET("", optionalAuth, h.listBoardPosts)
		board.GET("/pinned", optionalAuth, h.pinnedBoardPosts)
		board.GET("/author/:authorId", optionalAuth, h.boardPostsByAuthor)
		board.GET("/:id", optionalAuth, h.getBoardPost)
		board.POST("", requireAuth, h.createBoardPost)
		board.PUT("/:id", requireAuth, h.updateBoardPost)
		board.DELETE("/:id", requireAuth, h.deleteBoardPost)
	}

	api.POST("/images/presign", requireAuth, h.presignImage)

	return r
}

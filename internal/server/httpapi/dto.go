package httpapi

import (
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

type registerRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=4,max=72"`
	IsCorporate bool   `json:"isCorporate"`
}

// updateUserRequest leaves the password and corporate flag unchanged when
// they are omitted.
type updateUserRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"omitempty,min=4,max=72"`
	IsCorporate *bool  `json:"isCorporate"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

// userResponse is the public view of a user; the password hash never
// leaves the server.
type userResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsCorporate bool      `json:"isCorporate"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsCorporate: u.IsCorporate,
		CreatedAt:   u.CreatedAt,
	}
}

func newUserResponses(us []*models.User) []userResponse {
	result := make([]userResponse, 0, len(us))
	for _, u := range us {
		result = append(result, newUserResponse(u))
	}
	return result
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

type recipeIngredientRequest struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount"`
}

type recipeStepRequest struct {
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"imageUrl"`
}

type recipeRequest struct {
	Title        string                    `json:"title" binding:"required,max=200"`
	Description  string                    `json:"description" binding:"required"`
	CookingTime  int                       `json:"cookingTime" binding:"required,gt=0"`
	Servings     int                       `json:"servings" binding:"required,gt=0"`
	Difficulty   string                    `json:"difficulty" binding:"required,oneof=EASY MEDIUM HARD"`
	ImageURL     *string                   `json:"imageUrl"`
	Hashtags     []string                  `json:"hashtags"`
	Ingredients  []recipeIngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
	Instructions []recipeStepRequest       `json:"instructions" binding:"required,min=1,dive"`
}

func (r recipeRequest) toModel(authorID int64) models.NewRecipe {
	in := models.NewRecipe{
		Title:       r.Title,
		Description: r.Description,
		CookingTime: r.CookingTime,
		Servings:    r.Servings,
		Difficulty:  models.Difficulty(r.Difficulty),
		ImageURL:    r.ImageURL,
		Hashtags:    r.Hashtags,
		AuthorID:    authorID,
	}
	for _, ing := range r.Ingredients {
		in.Ingredients = append(in.Ingredients, models.RecipeIngredient{Name: ing.Name, Amount: ing.Amount})
	}
	for _, s := range r.Instructions {
		in.Instructions = append(in.Instructions, models.RecipeStep{Description: s.Description, ImageURL: s.ImageURL})
	}
	return in
}

type recipeQuery struct {
	Keyword        string `form:"keyword"`
	Difficulty     string `form:"difficulty" binding:"omitempty,oneof=EASY MEDIUM HARD"`
	MaxCookingTime int    `form:"maxCookingTime" binding:"gte=0"`
	Sort           string `form:"sort" binding:"omitempty,oneof=recent popular"`
	Limit          int    `form:"limit" binding:"gte=0,lte=100"`
	Offset         int    `form:"offset" binding:"gte=0"`
}

type limitQuery struct {
	Limit int `form:"limit" binding:"gte=0,lte=100"`
}

type recipePage struct {
	Items  []*models.Recipe `json:"items"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type ingredientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       int64   `json:"price" binding:"gte=0"`
	Unit        string  `json:"unit" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	InStock     *bool   `json:"inStock"`
}

func (r ingredientRequest) toModel() models.NewIngredient {
	return models.NewIngredient{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		InStock:     r.InStock,
	}
}

type ingredientQuery struct {
	Keyword  string `form:"keyword"`
	Category string `form:"category"`
	InStock  bool   `form:"inStock"`
	MinPrice *int64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *int64 `form:"maxPrice" binding:"omitempty,gte=0"`
}

type priceRangeQuery struct {
	MinPrice *int64 `form:"minPrice" binding:"required,gte=0"`
	MaxPrice *int64 `form:"maxPrice" binding:"required,gte=0"`
}

type boardPostRequest struct {
	Title         string `json:"title" binding:"required,max=200"`
	Content       string `json:"content" binding:"required"`
	Type          string `json:"type" binding:"omitempty,oneof=NOTICE QNA REVIEW GENERAL"`
	CorporateOnly bool   `json:"corporateOnly"`
	Pinned        bool   `json:"pinned"`
}

func (r boardPostRequest) toModel() models.NewBoardPost {
	return models.NewBoardPost{
		Title:         r.Title,
		Content:       r.Content,
		Type:          models.BoardPostType(r.Type),
		CorporateOnly: r.CorporateOnly,
		Pinned:        r.Pinned,
	}
}

type presignRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type presignResponse struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	Method      string    `json:"method"`
	ContentType string    `json:"contentType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

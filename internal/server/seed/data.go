package seed

import "github.com/dmitrijs2005/recipeshare/internal/server/models"

const (
	AuthorUsername = "recipeshare"
	AuthorEmail    = "kitchen@recipeshare.local"
)

func ptr[T any](v T) *T { return &v }

var sampleIngredients = []models.NewIngredient{
	{
		Name:        "토마토",
		Description: "신선한 토마토",
		Price:       2000,
		Unit:        "개",
		Category:    "채소",
		ImageURL:    ptr("https://images.unsplash.com/photo-1546470427-e4cf2b19e1d4?w=400"),
		InStock:     ptr(true),
	},
	{
		Name:        "양파",
		Description: "국산 양파",
		Price:       1500,
		Unit:        "개",
		Category:    "채소",
		ImageURL:    ptr("https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=400"),
		InStock:     ptr(true),
	},
	{
		Name:        "마늘",
		Description: "햇마늘",
		Price:       3000,
		Unit:        "봉",
		Category:    "채소",
		ImageURL:    ptr("https://images.unsplash.com/photo-1553978297-833d09932d37?w=400"),
		InStock:     ptr(true),
	},
	{
		Name:        "쌀",
		Description: "신동진쌀",
		Price:       15000,
		Unit:        "kg",
		Category:    "곡물",
		ImageURL:    ptr("https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400"),
		InStock:     ptr(true),
	},
}

// sampleRecipes have no author yet; Run fills in the seed user.
var sampleRecipes = []models.NewRecipe{
	{
		Title:       "김치찌개",
		Description: "잘 익은 김치와 돼지고기로 끓인 얼큰한 찌개",
		CookingTime: 30,
		Servings:    4,
		Difficulty:  models.DifficultyEasy,
		Ingredients: []models.RecipeIngredient{
			{Name: "김치", Amount: "300g"},
			{Name: "돼지고기", Amount: "200g"},
			{Name: "두부", Amount: "1모"},
			{Name: "양파", Amount: "1/2개"},
		},
		Instructions: []models.RecipeStep{
			{Description: "냄비에 돼지고기와 김치를 넣고 볶는다"},
			{Description: "물을 붓고 끓인다"},
			{Description: "두부와 양파를 넣고 10분 더 끓인다"},
		},
		Hashtags: []string{"한식", "찌개"},
	},
	{
		Title:       "토마토 달걀 볶음",
		Description: "토마토와 달걀로 빠르게 만드는 볶음 요리",
		CookingTime: 15,
		Servings:    2,
		Difficulty:  models.DifficultyEasy,
		Ingredients: []models.RecipeIngredient{
			{Name: "토마토", Amount: "2개"},
			{Name: "달걀", Amount: "3개"},
			{Name: "마늘", Amount: "1쪽"},
		},
		Instructions: []models.RecipeStep{
			{Description: "달걀을 풀어 반숙으로 익혀 덜어둔다"},
			{Description: "마늘과 토마토를 볶는다"},
			{Description: "달걀을 다시 넣고 간을 맞춘다"},
		},
		Hashtags: []string{"간단요리"},
	},
	{
		Title:       "마늘 볶음밥",
		Description: "마늘 향이 가득한 볶음밥",
		CookingTime: 20,
		Servings:    2,
		Difficulty:  models.DifficultyMedium,
		Ingredients: []models.RecipeIngredient{
			{Name: "밥", Amount: "2공기"},
			{Name: "마늘", Amount: "10쪽"},
			{Name: "양파", Amount: "1/2개"},
		},
		Instructions: []models.RecipeStep{
			{Description: "마늘을 얇게 썰어 기름에 노릇하게 튀긴다"},
			{Description: "양파를 볶다가 밥을 넣는다"},
			{Description: "마늘 기름과 튀긴 마늘을 넣고 섞는다"},
		},
		Hashtags: []string{"한식", "볶음밥"},
	},
}

var sampleNotice = models.NewBoardPost{
	Title:   "레시피 공유 게시판에 오신 것을 환영합니다",
	Content: "레시피와 요리 팁을 자유롭게 공유해 주세요.",
	Type:    models.BoardPostNotice,
}

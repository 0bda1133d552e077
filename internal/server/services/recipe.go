package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	SortRecent  = "recent"
	SortPopular = "popular"

	DefaultBestLimit = 12
)

// RecipeFilter narrows and orders RecipeService.List. Zero values disable
// the corresponding predicate; Limit 0 means no limit.
type RecipeFilter struct {
	Keyword        string
	Difficulty     models.Difficulty
	MaxCookingTime int
	Sort           string
	Limit          int
	Offset         int
}

type RecipeService struct {
	repomanager repomanager.RepositoryManager
}

func NewRecipeService(m repomanager.RepositoryManager) *RecipeService {
	return &RecipeService{repomanager: m}
}

// Create stores a recipe after checking that its author exists. Hashtags
// are normalised: trimmed, "#" dropped, lower-cased and de-duplicated.
func (s *RecipeService) Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error) {
	if err := validateRecipe(in); err != nil {
		return nil, err
	}

	if _, err := s.repomanager.Users().GetByID(ctx, in.AuthorID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %d", common.ErrorUnknownAuthor, in.AuthorID)
		}
		return nil, err
	}

	in.Hashtags = normalizeHashtags(in.Hashtags)

	recipe, err := s.repomanager.Recipes().Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating recipe: %w", err)
	}
	return recipe, nil
}

// Update replaces the content of recipe id. Only its author may edit it;
// anyone else gets common.ErrorForbidden. Input rules are those of Create.
func (s *RecipeService) Update(ctx context.Context, editor *models.User, id int64, in models.NewRecipe) (*models.Recipe, error) {
	if _, err := s.ownedRecipe(ctx, editor, id); err != nil {
		return nil, err
	}
	if err := validateRecipe(in); err != nil {
		return nil, err
	}

	in.Hashtags = normalizeHashtags(in.Hashtags)

	recipe, err := s.repomanager.Recipes().Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating recipe: %w", err)
	}
	return recipe, nil
}

// Delete removes recipe id on behalf of its author.
func (s *RecipeService) Delete(ctx context.Context, editor *models.User, id int64) error {
	if _, err := s.ownedRecipe(ctx, editor, id); err != nil {
		return err
	}
	return s.repomanager.Recipes().Delete(ctx, id)
}

// ownedRecipe loads recipe id and checks that editor wrote it.
func (s *RecipeService) ownedRecipe(ctx context.Context, editor *models.User, id int64) (*models.Recipe, error) {
	if editor == nil {
		return nil, common.ErrorUnauthorized
	}
	recipe, err := s.repomanager.Recipes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.AuthorID != editor.ID {
		return nil, fmt.Errorf("%w: recipe %d belongs to another author", common.ErrorForbidden, id)
	}
	return recipe, nil
}

// Get returns the recipe and counts the view.
func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	repo := s.repomanager.Recipes()

	if _, err := repo.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	return repo.GetByID(ctx, id)
}

// List returns one page of the recipes matching f and the total number of
// matches.
func (s *RecipeService) List(ctx context.Context, f RecipeFilter) ([]*models.Recipe, int, error) {
	if f.Difficulty != "" && !f.Difficulty.Valid() {
		return nil, 0, validationError("unknown difficulty %q", f.Difficulty)
	}
	if f.Limit < 0 || f.Offset < 0 || f.MaxCookingTime < 0 {
		return nil, 0, validationError("limit, offset and maxCookingTime must not be negative")
	}

	all, err := s.repomanager.Recipes().GetAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	match := recipeMatcher(f)
	result := make([]*models.Recipe, 0, len(all))
	for _, r := range all {
		if match(r) {
			result = append(result, r)
		}
	}

	switch f.Sort {
	case SortRecent, "":
		slices.SortStableFunc(result, byNewest)
	case SortPopular:
		slices.SortStableFunc(result, byPopularity)
	default:
		return nil, 0, validationError("unknown sort %q", f.Sort)
	}

	from, to := page(len(result), f.Offset, f.Limit)
	return result[from:to], len(result), nil
}

func (s *RecipeService) ByAuthor(ctx context.Context, authorID int64) ([]*models.Recipe, error) {
	return s.repomanager.Recipes().GetByAuthor(ctx, authorID)
}

// Best returns the most viewed recipes, at most limit of them
// (DefaultBestLimit when limit is not positive).
func (s *RecipeService) Best(ctx context.Context, limit int) ([]*models.Recipe, error) {
	if limit <= 0 {
		limit = DefaultBestLimit
	}
	result, _, err := s.List(ctx, RecipeFilter{Sort: SortPopular, Limit: limit})
	return result, err
}

func validateRecipe(in models.NewRecipe) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return validationError("title is required")
	case in.CookingTime <= 0:
		return validationError("cookingTime must be positive")
	case in.Servings <= 0:
		return validationError("servings must be positive")
	case !in.Difficulty.Valid():
		return validationError("unknown difficulty %q", in.Difficulty)
	case len(in.Ingredients) == 0:
		return validationError("at least one ingredient is required")
	case len(in.Instructions) == 0:
		return validationError("at least one instruction step is required")
	}
	for i, ing := range in.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return validationError("ingredient %d has no name", i+1)
		}
	}
	for i, step := range in.Instructions {
		if strings.TrimSpace(step.Description) == "" {
			return validationError("step %d has no description", i+1)
		}
	}
	return nil
}

func normalizeHashtags(tags []string) []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		t = lower.String(strings.TrimLeft(strings.TrimSpace(t), "#"))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// recipeMatcher builds the predicate for f. Keyword matching is Unicode
// case-insensitive over title, description, hashtags and ingredient names.
func recipeMatcher(f RecipeFilter) func(*models.Recipe) bool {
	fold := cases.Fold()
	keyword := fold.String(strings.TrimSpace(f.Keyword))

	contains := func(s string) bool {
		return strings.Contains(fold.String(s), keyword)
	}

	return func(r *models.Recipe) bool {
		if f.Difficulty != "" && r.Difficulty != f.Difficulty {
			return false
		}
		if f.MaxCookingTime > 0 && r.CookingTime > f.MaxCookingTime {
			return false
		}
		if keyword == "" {
			return true
		}
		if contains(r.Title) || contains(r.Description) {
			return true
		}
		for _, t := range r.Hashtags {
			if contains(t) {
				return true
			}
		}
		for _, ing := range r.Ingredients {
			if contains(ing.Name) {
				return true
			}
		}
		return false
	}
}

func byNewest(a, b *models.Recipe) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func byPopularity(a, b *models.Recipe) int {
	if c := cmp.Compare(b.ViewCount, a.ViewCount); c != 0 {
		return c
	}
	return byNewest(a, b)
}

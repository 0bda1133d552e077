package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

const selectRecipeColumns = `r.id, r.title, r.description, r.cooking_time, r.servings, r.difficulty,
	r.image_url, r.hashtags, r.author_id, r.view_count, r.created_at`

// PostgresRepository keeps the recipe row in "recipes" and its ordered
// ingredient lines and steps in "recipe_ingredients" and "recipe_steps".
// A recipe and its children are written in one transaction.
type PostgresRepository struct {
	db dbx.DB
}

// NewPostgresRepository needs a dbx.DB rather than a bare DBTX because
// writes open their own transaction.
func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, in models.NewRecipe) (*models.Recipe, error) {
	recipe := &models.Recipe{
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Steps(),
		Ingredients:  append([]models.RecipeIngredient{}, in.Ingredients...),
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Difficulty:   in.Difficulty,
		Hashtags:     append([]string{}, in.Hashtags...),
		AuthorID:     in.AuthorID,
	}
	if in.ImageURL != nil {
		img := *in.ImageURL
		recipe.ImageURL = &img
	}

	hashtags, err := json.Marshal(recipe.Hashtags)
	if err != nil {
		return nil, fmt.Errorf("encode hashtags: %w", err)
	}

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`INSERT INTO recipes (title, description, cooking_time, servings, difficulty, image_url, hashtags, author_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id, view_count, created_at`

		err := tx.QueryRowContext(ctx, query,
			recipe.Title, recipe.Description, recipe.CookingTime, recipe.Servings, string(recipe.Difficulty),
			recipe.ImageURL, string(hashtags), recipe.AuthorID).
			Scan(&recipe.ID, &recipe.ViewCount, &recipe.CreatedAt)
		if err != nil {
			return err
		}
		return insertChildren(ctx, tx, recipe)
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.NewRecipe) (*models.Recipe, error) {
	recipe := &models.Recipe{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Steps(),
		Ingredients:  append([]models.RecipeIngredient{}, in.Ingredients...),
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Difficulty:   in.Difficulty,
		Hashtags:     append([]string{}, in.Hashtags...),
	}
	if in.ImageURL != nil {
		img := *in.ImageURL
		recipe.ImageURL = &img
	}

	hashtags, err := json.Marshal(recipe.Hashtags)
	if err != nil {
		return nil, fmt.Errorf("encode hashtags: %w", err)
	}

	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`UPDATE recipes
			 SET title = $2, description = $3, cooking_time = $4, servings = $5, difficulty = $6, image_url = $7, hashtags = $8
			 WHERE id = $1
			 RETURNING author_id, view_count, created_at`

		err := tx.QueryRowContext(ctx, query,
			id, recipe.Title, recipe.Description, recipe.CookingTime, recipe.Servings, string(recipe.Difficulty),
			recipe.ImageURL, string(hashtags)).
			Scan(&recipe.AuthorID, &recipe.ViewCount, &recipe.CreatedAt)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM recipe_steps WHERE recipe_id = $1`, id); err != nil {
			return err
		}
		return insertChildren(ctx, tx, recipe)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recipe, nil
}

// Delete relies on ON DELETE CASCADE for the child rows.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func insertChildren(ctx context.Context, tx dbx.DBTX, recipe *models.Recipe) error {
	for i, ing := range recipe.Ingredients {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, position, name, amount) VALUES ($1, $2, $3, $4)`,
			recipe.ID, i+1, ing.Name, ing.Amount)
		if err != nil {
			return err
		}
	}

	for _, s := range recipe.Instructions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_steps (recipe_id, step_index, description, image_url) VALUES ($1, $2, $3, $4)`,
			recipe.ID, s.StepIndex, s.Description, s.ImageURL)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	result, err := r.load(ctx, `WHERE r.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, common.ErrorNotFound
	}
	return result[0], nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Recipe, error) {
	return r.load(ctx, ``)
}

func (r *PostgresRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*models.Recipe, error) {
	return r.load(ctx, `WHERE r.author_id = $1`, authorID)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE recipes SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// load reads the recipes matching where (a clause over alias r) and
// attaches their ingredient lines and steps in stored order.
func (r *PostgresRepository) load(ctx context.Context, where string, args ...any) ([]*models.Recipe, error) {
	result, err := r.selectRecipes(ctx, where, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(result) == 0 {
		return result, nil
	}

	byID := make(map[int64]*models.Recipe, len(result))
	for _, rc := range result {
		byID[rc.ID] = rc
	}

	if err := r.attachIngredients(ctx, byID, where, args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := r.attachSteps(ctx, byID, where, args...); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) selectRecipes(ctx context.Context, where string, args ...any) ([]*models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectRecipeColumns+` FROM recipes r `+where+` ORDER BY r.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*models.Recipe, 0)
	for rows.Next() {
		var (
			rc         models.Recipe
			difficulty string
			hashtags   []byte
		)
		if err := rows.Scan(&rc.ID, &rc.Title, &rc.Description, &rc.CookingTime, &rc.Servings, &difficulty,
			&rc.ImageURL, &hashtags, &rc.AuthorID, &rc.ViewCount, &rc.CreatedAt); err != nil {
			return nil, err
		}
		rc.Difficulty = models.Difficulty(difficulty)
		rc.Hashtags = []string{}
		if len(hashtags) > 0 {
			if err := json.Unmarshal(hashtags, &rc.Hashtags); err != nil {
				return nil, fmt.Errorf("decode hashtags of recipe %d: %w", rc.ID, err)
			}
		}
		rc.Ingredients = []models.RecipeIngredient{}
		rc.Instructions = []models.RecipeStep{}
		result = append(result, &rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) attachIngredients(ctx context.Context, byID map[int64]*models.Recipe, where string, args ...any) error {
	query := `SELECT ri.recipe_id, ri.name, ri.amount
		FROM recipe_ingredients ri JOIN recipes r ON r.id = ri.recipe_id ` + where + `
		ORDER BY ri.recipe_id, ri.position`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID int64
			ing      models.RecipeIngredient
		)
		if err := rows.Scan(&recipeID, &ing.Name, &ing.Amount); err != nil {
			return err
		}
		// rows of recipes committed after the parent select are skipped
		if rc, ok := byID[recipeID]; ok {
			rc.Ingredients = append(rc.Ingredients, ing)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) attachSteps(ctx context.Context, byID map[int64]*models.Recipe, where string, args ...any) error {
	query := `SELECT rs.recipe_id, rs.step_index, rs.description, rs.image_url
		FROM recipe_steps rs JOIN recipes r ON r.id = rs.recipe_id ` + where + `
		ORDER BY rs.recipe_id, rs.step_index`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID int64
			step     models.RecipeStep
		)
		if err := rows.Scan(&recipeID, &step.StepIndex, &step.Description, &step.ImageURL); err != nil {
			return err
		}
		if rc, ok := byID[recipeID]; ok {
			rc.Instructions = append(rc.Instructions, step)
		}
	}
	return rows.Err()
}

package ingredients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

const selectIngredientColumns = `id, name, description, price, unit, category, image_url, in_stock, created_at`

// PostgresRepository stores the catalog in the "ingredients" table.
//
// Ids come from an identity column. Update and Delete report
// common.ErrorNotFound when no row matches.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a repository that runs its queries on db
// (*sql.DB or *sql.Tx).
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, in models.NewIngredient) (*models.Ingredient, error) {
	query :=
		`INSERT INTO ingredients (name, description, price, unit, category, image_url, in_stock)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`

	item := &models.Ingredient{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Unit:        in.Unit,
		Category:    in.Category,
		ImageURL:    copyString(in.ImageURL),
		InStock:     in.InStockOrDefault(),
	}

	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Price, item.Unit, item.Category, item.ImageURL, item.InStock).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Ingredient, error) {
	item, err := scanIngredient(r.db.QueryRowContext(ctx, `SELECT `+selectIngredientColumns+` FROM ingredients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.Ingredient, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectIngredientColumns+` FROM ingredients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Ingredient, 0)
	for rows.Next() {
		item, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.NewIngredient) (*models.Ingredient, error) {
	query :=
		`UPDATE ingredients
		 SET name = $2, description = $3, price = $4, unit = $5, category = $6, image_url = $7, in_stock = $8
		 WHERE id = $1
		 RETURNING ` + selectIngredientColumns

	item, err := scanIngredient(r.db.QueryRowContext(ctx, query,
		id, in.Name, in.Description, in.Price, in.Unit, in.Category, in.ImageURL, in.InStockOrDefault()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIngredient(s scanner) (*models.Ingredient, error) {
	item := &models.Ingredient{}
	if err := s.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Unit, &item.Category,
		&item.ImageURL, &item.InStock, &item.CreatedAt); err != nil {
		return nil, err
	}
	return item, nil
}

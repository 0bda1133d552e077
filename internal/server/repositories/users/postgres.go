package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation        = "23505"
	usernameConstraintName = "users_username_key"
	emailConstraintName    = "users_email_key"
	selectUserColumns      = `id, username, email, password, is_corporate, created_at`
)

// PostgresRepository stores accounts in the "users" table. Uniqueness is
// enforced by the users_username_key and users_email_key constraints; a
// violation of either maps to ErrUsernameTaken or ErrEmailTaken.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX
// (*sql.DB or *sql.Tx).
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, in models.NewUser) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, password, is_corporate)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		IsCorporate: in.IsCorporate,
	}

	err := r.db.QueryRowContext(ctx, query, in.Username, in.Email, in.Password, in.IsCorporate).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.NewUser) (*models.User, error) {
	query :=
		`UPDATE users SET username = $2, email = $3, password = $4, is_corporate = $5
		 WHERE id = $1
		 RETURNING ` + selectUserColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, in.Username, in.Email, in.Password, in.IsCorporate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapWriteError(err)
	}
	return u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

// mapWriteError turns unique violations into the conflict errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usernameConstraintName:
			return ErrUsernameTaken
		case emailConstraintName:
			return ErrEmailTaken
		}
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE username = $1`, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.getMany(ctx, `SELECT `+selectUserColumns+` FROM users ORDER BY id`)
}

func (r *PostgresRepository) GetCorporate(ctx context.Context) ([]*models.User, error) {
	return r.getMany(ctx, `SELECT `+selectUserColumns+` FROM users WHERE is_corporate = $1 ORDER BY id`, true)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) getMany(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	u := &models.User{}
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.IsCorporate, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

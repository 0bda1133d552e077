package boardposts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/dbx"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

const selectPostColumns = `id, title, content, type, author_id, view_count, corporate_only, pinned, created_at`

// PostgresRepository stores posts in the "board_posts" table. Ids come from
// an identity column, so a deleted post's id is never reused.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX
// (*sql.DB or *sql.Tx).
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, in models.NewBoardPost) (*models.BoardPost, error) {
	query :=
		`INSERT INTO board_posts (title, content, type, author_id, corporate_only, pinned)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, view_count, created_at`

	post := &models.BoardPost{
		Title:         in.Title,
		Content:       in.Content,
		Type:          in.TypeOrDefault(),
		AuthorID:      in.AuthorID,
		CorporateOnly: in.CorporateOnly,
		Pinned:        in.Pinned,
	}

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, string(post.Type), post.AuthorID, post.CorporateOnly, post.Pinned).
		Scan(&post.ID, &post.ViewCount, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.BoardPost, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectPostColumns+` FROM board_posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.BoardPost, error) {
	return r.getMany(ctx, `SELECT `+selectPostColumns+` FROM board_posts ORDER BY id`)
}

func (r *PostgresRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*models.BoardPost, error) {
	return r.getMany(ctx, `SELECT `+selectPostColumns+` FROM board_posts WHERE author_id = $1 ORDER BY id`, authorID)
}

func (r *PostgresRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE board_posts SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.NewBoardPost) (*models.BoardPost, error) {
	query :=
		`UPDATE board_posts SET title = $2, content = $3, type = $4, corporate_only = $5, pinned = $6
		 WHERE id = $1
		 RETURNING ` + selectPostColumns

	row := r.db.QueryRowContext(ctx, query, id, in.Title, in.Content, string(in.TypeOrDefault()), in.CorporateOnly, in.Pinned)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return post, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM board_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) getMany(ctx context.Context, query string, args ...any) ([]*models.BoardPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.BoardPost, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*models.BoardPost, error) {
	var (
		p    models.BoardPost
		kind string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Content, &kind, &p.AuthorID, &p.ViewCount, &p.CorporateOnly, &p.Pinned, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Type = models.BoardPostType(kind)
	return &p, nil
}

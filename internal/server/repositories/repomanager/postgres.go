package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/migrations"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/boardposts"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories sharing one
// connection pool and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	db          *sql.DB
	users       *users.PostgresRepository
	recipes     *recipes.PostgresRepository
	ingredients *ingredients.PostgresRepository
	boardPosts  *boardposts.PostgresRepository
}

// sqlOpen and gooseUpContext are seams for tests.
var (
	sqlOpen        = sql.Open
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return goose.UpContext(ctx, db, dir, opts...)
	}
)

// NewPostgresRepositoryManager opens a pgx pool for dsn and verifies it is
// reachable. Migrations are not run; see RunMigrations.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return NewPostgresRepositoryManagerFromDB(db), nil
}

// NewPostgresRepositoryManagerFromDB binds the repositories to an already
// opened pool.
func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{
		db:          db,
		users:       users.NewPostgresRepository(db),
		recipes:     recipes.NewPostgresRepository(db),
		ingredients: ingredients.NewPostgresRepository(db),
		boardPosts:  boardposts.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Kind() string {
	return common.StoragePostgres
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the pool.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Recipes() recipes.Repository {
	return m.recipes
}

func (m *PostgresRepositoryManager) Ingredients() ingredients.Repository {
	return m.ingredients
}

func (m *PostgresRepositoryManager) BoardPosts() boardposts.Repository {
	return m.boardPosts
}

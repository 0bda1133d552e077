// Package repomanager assembles the per-collection repositories into one
// store. The in-memory and Postgres managers are interchangeable; New picks
// one from configuration.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/config"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/boardposts"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/users"
)

type RepositoryManager interface {
	// Kind reports the backing, common.StorageMemory or common.StoragePostgres.
	Kind() string
	RunMigrations(ctx context.Context) error
	// Conn is nil for the in-memory store.
	Conn() *sql.DB
	Close() error

	Users() users.Repository
	Recipes() recipes.Repository
	Ingredients() ingredients.Repository
	BoardPosts() boardposts.Repository
}

// New builds the manager selected by cfg.StorageKind. The Postgres manager
// is migrated before it is returned.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	switch cfg.StorageKind {
	case common.StorageMemory, "":
		return NewInMemoryRepositoryManager(), nil
	case common.StoragePostgres:
		m, err := NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := m.RunMigrations(ctx); err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q: %w", cfg.StorageKind, common.ErrorValidation)
	}
}

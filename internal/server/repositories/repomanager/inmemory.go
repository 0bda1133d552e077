package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/boardposts"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps every collection in process memory; all
// data is lost on restart.
type InMemoryRepositoryManager struct {
	users       *users.MemoryRepository
	recipes     *recipes.MemoryRepository
	ingredients *ingredients.MemoryRepository
	boardPosts  *boardposts.MemoryRepository
}

// NewInMemoryRepositoryManager returns a manager over empty repositories.
func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:       users.NewMemoryRepository(),
		recipes:     recipes.NewMemoryRepository(),
		ingredients: ingredients.NewMemoryRepository(),
		boardPosts:  boardposts.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Kind() string {
	return common.StorageMemory
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Recipes() recipes.Repository {
	return m.recipes
}

func (m *InMemoryRepositoryManager) Ingredients() ingredients.Repository {
	return m.ingredients
}

func (m *InMemoryRepositoryManager) BoardPosts() boardposts.Repository {
	return m.boardPosts
}

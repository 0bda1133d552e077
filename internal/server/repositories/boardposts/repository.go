// Package boardposts stores community board posts. Visibility of
// corporate-only posts is decided by the board service, not here.
package boardposts

import (
	"context"

	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// Repository is the board post collection. Lookups by id return
// common.ErrorNotFound for a missing post. List methods return posts in id
// order; ordering for display is left to the caller.
type Repository interface {
	// Create assigns the next id, defaults the type to GENERAL and stamps
	// the creation time.
	Create(ctx context.Context, post models.NewBoardPost) (*models.BoardPost, error)
	GetByID(ctx context.Context, id int64) (*models.BoardPost, error)
	GetAll(ctx context.Context) ([]*models.BoardPost, error)
	GetByAuthor(ctx context.Context, authorID int64) ([]*models.BoardPost, error)
	// IncrementViewCount bumps the counter and returns the new value.
	IncrementViewCount(ctx context.Context, id int64) (int64, error)
	// Update replaces the editable fields of post id. The author, view count
	// and creation time are kept.
	Update(ctx context.Context, id int64, post models.NewBoardPost) (*models.BoardPost, error)
	// Delete removes post id. Its id is never handed out again.
	Delete(ctx context.Context, id int64) error
}

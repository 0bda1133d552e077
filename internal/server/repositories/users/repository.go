// Package users stores registered accounts. Usernames and emails are unique;
// a duplicate is rejected with ErrUsernameTaken or ErrEmailTaken, both of
// which match common.ErrorAlreadyExists.
package users

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

var (
	ErrUsernameTaken = fmt.Errorf("username %w", common.ErrorAlreadyExists)
	ErrEmailTaken    = fmt.Errorf("email %w", common.ErrorAlreadyExists)
)

// Repository is the account collection. Point lookups return
// common.ErrorNotFound when nothing matches; list methods return users in
// id order. Passwords are stored as given, hashing is the caller's job.
type Repository interface {
	// Create assigns the next id. A taken username or email is rejected
	// before anything is written.
	Create(ctx context.Context, user models.NewUser) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	GetCorporate(ctx context.Context) ([]*models.User, error)
	// Update replaces username, email, password and corporate flag of user
	// id. Taking another user's username or email fails like Create does.
	Update(ctx context.Context, id int64, user models.NewUser) (*models.User, error)
	// Delete removes the account only; content it authored is kept.
	Delete(ctx context.Context, id int64) error
}

// Package seed fills an empty store with a small demo catalog: one author
// account, four ingredients, three recipes and a welcome notice.
//
// Run is idempotent: it does nothing when recipes or ingredients already
// hold rows, so it is safe to call on every start against a persistent
// store. Errors are returned for the caller to log; rows written before the
// failure stay in place.
package seed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/logging"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Result reports what Run wrote.
type Result struct {
	Skipped     bool
	AuthorID    int64
	Ingredients int
	Recipes     int
	BoardPosts  int
}

func Run(ctx context.Context, repos repomanager.RepositoryManager, logger logging.Logger) (Result, error) {
	var res Result
	log := logger.With("module", "seed")

	empty, err := isEmpty(ctx, repos)
	if err != nil {
		log.Error(ctx, "seed check failed", "error", err)
		return res, err
	}
	if !empty {
		log.Info(ctx, "store already holds data, skipping sample data")
		res.Skipped = true
		return res, nil
	}

	author, err := seedAuthor(ctx, repos)
	if err != nil {
		log.Error(ctx, "seed author failed", "error", err)
		return res, err
	}
	res.AuthorID = author.ID

	for _, in := range sampleIngredients {
		if _, err := repos.Ingredients().Create(ctx, in); err != nil {
			log.Error(ctx, "seed ingredient failed", "name", in.Name, "error", err)
			return res, fmt.Errorf("seed ingredient %q: %w", in.Name, err)
		}
		res.Ingredients++
	}

	for _, in := range sampleRecipes {
		in.AuthorID = author.ID
		if _, err := repos.Recipes().Create(ctx, in); err != nil {
			log.Error(ctx, "seed recipe failed", "title", in.Title, "error", err)
			return res, fmt.Errorf("seed recipe %q: %w", in.Title, err)
		}
		res.Recipes++
	}

	notice := sampleNotice
	notice.AuthorID = author.ID
	if _, err := repos.BoardPosts().Create(ctx, notice); err != nil {
		log.Error(ctx, "seed notice failed", "error", err)
		return res, fmt.Errorf("seed notice: %w", err)
	}
	res.BoardPosts++

	log.Info(ctx, "sample data loaded",
		"author_id", res.AuthorID, "ingredients", res.Ingredients, "recipes", res.Recipes)
	return res, nil
}

func isEmpty(ctx context.Context, repos repomanager.RepositoryManager) (bool, error) {
	n, err := repos.Recipes().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count recipes: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	n, err = repos.Ingredients().Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count ingredients: %w", err)
	}
	return n == 0, nil
}

// seedAuthor returns the seed account, creating it when missing. The
// account gets a random password and cannot be logged into.
func seedAuthor(ctx context.Context, repos repomanager.RepositoryManager) (*models.User, error) {
	users := repos.Users()

	u, err := users.GetByUsername(ctx, AuthorUsername)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return users.Create(ctx, models.NewUser{
		Username:    AuthorUsername,
		Email:       AuthorEmail,
		Password:    string(hash),
		IsCorporate: true,
	})
}

package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/dmitrijs2005/recipeshare/internal/server/repositories/repomanager"
)

// BoardService applies the board's visibility rules: corporate-only posts
// are written and read by corporate users only. A nil viewer is an
// anonymous visitor.
type BoardService struct {
	repomanager repomanager.RepositoryManager
}

func NewBoardService(m repomanager.RepositoryManager) *BoardService {
	return &BoardService{repomanager: m}
}

// Create publishes a post as author. Corporate-only and pinned posts need a
// corporate author.
func (s *BoardService) Create(ctx context.Context, author *models.User, in models.NewBoardPost) (*models.BoardPost, error) {
	if author == nil {
		return nil, common.ErrorUnauthorized
	}
	in, err := preparePost(author, in)
	if err != nil {
		return nil, err
	}

	in.AuthorID = author.ID
	post, err := s.repomanager.BoardPosts().Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return post, nil
}

// Update replaces post id. Only its author may edit it, under the same
// rules as Create.
func (s *BoardService) Update(ctx context.Context, editor *models.User, id int64, in models.NewBoardPost) (*models.BoardPost, error) {
	if err := s.checkAuthor(ctx, editor, id); err != nil {
		return nil, err
	}
	in, err := preparePost(editor, in)
	if err != nil {
		return nil, err
	}

	post, err := s.repomanager.BoardPosts().Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}

// Delete removes post id on behalf of its author.
func (s *BoardService) Delete(ctx context.Context, editor *models.User, id int64) error {
	if err := s.checkAuthor(ctx, editor, id); err != nil {
		return err
	}
	return s.repomanager.BoardPosts().Delete(ctx, id)
}

func (s *BoardService) checkAuthor(ctx context.Context, editor *models.User, id int64) error {
	if editor == nil {
		return common.ErrorUnauthorized
	}
	post, err := s.repomanager.BoardPosts().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != editor.ID {
		return fmt.Errorf("%w: post %d belongs to another author", common.ErrorForbidden, id)
	}
	return nil
}

func preparePost(author *models.User, in models.NewBoardPost) (models.NewBoardPost, error) {
	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.Title == "":
		return in, validationError("title is required")
	case strings.TrimSpace(in.Content) == "":
		return in, validationError("content is required")
	case in.Type != "" && !in.Type.Valid():
		return in, validationError("unknown post type %q", in.Type)
	}

	if in.CorporateOnly && !author.IsCorporate {
		return in, fmt.Errorf("%w: corporate-only posts require a corporate account", common.ErrorForbidden)
	}
	if in.Pinned && !author.IsCorporate {
		return in, fmt.Errorf("%w: pinning requires a corporate account", common.ErrorForbidden)
	}
	return in, nil
}

// Get returns the post and counts the view. Hidden posts are
// common.ErrorForbidden and are not counted.
func (s *BoardService) Get(ctx context.Context, viewer *models.User, id int64) (*models.BoardPost, error) {
	repo := s.repomanager.BoardPosts()

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visible(viewer, post) {
		return nil, common.ErrorForbidden
	}

	views, err := repo.IncrementViewCount(ctx, id)
	if err != nil {
		return nil, err
	}
	post.ViewCount = views
	return post, nil
}

// List returns the posts visible to viewer: pinned posts first, then
// notices, then newest first.
func (s *BoardService) List(ctx context.Context, viewer *models.User) ([]*models.BoardPost, error) {
	all, err := s.repomanager.BoardPosts().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := filterVisible(viewer, all)
	slices.SortStableFunc(result, boardOrder)
	return result, nil
}

// Pinned returns the pinned posts visible to viewer, newest first.
func (s *BoardService) Pinned(ctx context.Context, viewer *models.User) ([]*models.BoardPost, error) {
	all, err := s.repomanager.BoardPosts().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*models.BoardPost, 0)
	for _, p := range filterVisible(viewer, all) {
		if p.Pinned {
			result = append(result, p)
		}
	}
	slices.SortStableFunc(result, byNewestPost)
	return result, nil
}

func (s *BoardService) ByAuthor(ctx context.Context, viewer *models.User, authorID int64) ([]*models.BoardPost, error) {
	posts, err := s.repomanager.BoardPosts().GetByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return filterVisible(viewer, posts), nil
}

func visible(viewer *models.User, post *models.BoardPost) bool {
	return !post.CorporateOnly || (viewer != nil && viewer.IsCorporate)
}

func filterVisible(viewer *models.User, posts []*models.BoardPost) []*models.BoardPost {
	result := make([]*models.BoardPost, 0, len(posts))
	for _, p := range posts {
		if visible(viewer, p) {
			result = append(result, p)
		}
	}
	return result
}

func boardOrder(a, b *models.BoardPost) int {
	if c := firstIf(a.Pinned, b.Pinned); c != 0 {
		return c
	}
	if c := firstIf(a.Type == models.BoardPostNotice, b.Type == models.BoardPostNotice); c != 0 {
		return c
	}
	return byNewestPost(a, b)
}

func byNewestPost(a, b *models.BoardPost) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

// firstIf orders the side for which the flag holds first.
func firstIf(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

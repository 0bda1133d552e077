package boardposts

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// MemoryRepository keeps board posts in process memory. The mutex guards
// the id counter, the index and the insertion order together, so ids are
// assigned without gaps or repeats under concurrent writers.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*models.BoardPost
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty repository whose first post gets id 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[int64]*models.BoardPost),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, in models.NewBoardPost) (*models.BoardPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post := &models.BoardPost{
		ID:            r.nextID,
		Title:         in.Title,
		Content:       in.Content,
		Type:          in.TypeOrDefault(),
		AuthorID:      in.AuthorID,
		CorporateOnly: in.CorporateOnly,
		Pinned:        in.Pinned,
		CreatedAt:     r.now(),
	}
	r.nextID++

	r.byID[post.ID] = post
	r.order = append(r.order, post.ID)

	c := *post
	return &c, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.BoardPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *post
	return &c, nil
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.BoardPost, error) {
	return r.filter(func(*models.BoardPost) bool { return true }), nil
}

func (r *MemoryRepository) GetByAuthor(ctx context.Context, authorID int64) ([]*models.BoardPost, error) {
	return r.filter(func(p *models.BoardPost) bool { return p.AuthorID == authorID }), nil
}

func (r *MemoryRepository) IncrementViewCount(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return 0, common.ErrorNotFound
	}
	post.ViewCount++
	return post.ViewCount, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, in models.NewBoardPost) (*models.BoardPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	post.Title = in.Title
	post.Content = in.Content
	post.Type = in.TypeOrDefault()
	post.CorporateOnly = in.CorporateOnly
	post.Pinned = in.Pinned

	c := *post
	return &c, nil
}

// Delete removes the post. nextID is left as is, so the id stays retired.
func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return nil
}

func (r *MemoryRepository) filter(match func(*models.BoardPost) bool) []*models.BoardPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.BoardPost, 0, len(r.order))
	for _, id := range r.order {
		if p := r.byID[id]; match(p) {
			c := *p
			result = append(result, &c)
		}
	}
	return result
}

package boardposts

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_Create(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	p1, err := r.Create(ctx, models.NewBoardPost{Title: "hello", Content: "first", AuthorID: 1})
	require.NoError(t, err)
	p2, err := r.Create(ctx, models.NewBoardPost{Title: "notice", Type: models.BoardPostNotice, AuthorID: 2, CorporateOnly: true})
	require.NoError(t, err)

	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, models.BoardPostGeneral, p1.Type)
	assert.False(t, p1.CorporateOnly)
	assert.Equal(t, int64(2), p2.ID)
	assert.Equal(t, models.BoardPostNotice, p2.Type)
	assert.True(t, p2.CorporateOnly)
	assert.Equal(t, int64(0), p2.ViewCount)
}

func TestMemoryRepository_QueriesAndViews(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	for _, a := range []int64{1, 2, 1} {
		_, err := r.Create(ctx, models.NewBoardPost{Title: "t", AuthorID: a})
		require.NoError(t, err)
	}

	byAuthor, err := r.GetByAuthor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, int64(1), byAuthor[0].ID)
	assert.Equal(t, int64(3), byAuthor[1].ID)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := r.IncrementViewCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := r.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	_, err = r.GetByID(ctx, 10)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = r.IncrementViewCount(ctx, 10)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_UpdateKeepsAuthorAndViews(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	p, err := r.Create(ctx, models.NewBoardPost{Title: "t", Content: "c", AuthorID: 4})
	require.NoError(t, err)
	_, err = r.IncrementViewCount(ctx, p.ID)
	require.NoError(t, err)

	got, err := r.Update(ctx, p.ID, models.NewBoardPost{Title: "edited", Content: "c2", AuthorID: 99, Pinned: true})
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Title)
	assert.Equal(t, models.BoardPostGeneral, got.Type)
	assert.True(t, got.Pinned)
	assert.Equal(t, int64(4), got.AuthorID)
	assert.Equal(t, int64(1), got.ViewCount)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)

	_, err = r.Update(ctx, 42, models.NewBoardPost{Title: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryRepository_DeletedIDIsNotReused(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Create(ctx, models.NewBoardPost{Title: "t", AuthorID: 1})
		require.NoError(t, err)
	}

	require.NoError(t, r.Delete(ctx, 3))
	assert.ErrorIs(t, r.Delete(ctx, 3), common.ErrorNotFound)
	require.NoError(t, r.Delete(ctx, 1))

	_, err := r.GetByID(ctx, 3)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	next, err := r.Create(ctx, models.NewBoardPost{Title: "t", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int64{2, 4}, []int64{all[0].ID, all[1].ID})
}

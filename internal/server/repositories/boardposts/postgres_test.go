package boardposts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var postColumns = []string{"id", "title", "content", "type", "author_id", "view_count", "corporate_only", "pinned", "created_at"}

func TestPostgresCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO board_posts`)).
		WithArgs("hi", "body", "GENERAL", int64(3), false, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "view_count", "created_at"}).AddRow(int64(1), int64(0), now))

	p, err := repo.Create(context.Background(), models.NewBoardPost{Title: "hi", Content: "body", AuthorID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, models.BoardPostGeneral, p.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM board_posts WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(int64(1), "n", "c", "NOTICE", int64(2), int64(5), true, false, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM board_posts WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM board_posts WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnError(errors.New("boom"))

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.BoardPostNotice, p.Type)
	assert.True(t, p.CorporateOnly)
	assert.Equal(t, int64(5), p.ViewCount)

	_, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetByID(context.Background(), 3)
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrorNotFound))
}

func TestPostgresGetByAuthorAndIncrement(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM board_posts WHERE author_id = $1 ORDER BY id`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(int64(1), "a", "c", "QNA", int64(2), int64(0), false, false, now).
			AddRow(int64(4), "b", "c", "REVIEW", int64(2), int64(0), false, true, now))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE board_posts SET view_count = view_count + 1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}).AddRow(int64(1)))

	posts, err := repo.GetByAuthor(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, models.BoardPostReview, posts[1].Type)
	assert.True(t, posts[1].Pinned)

	n, err := repo.IncrementViewCount(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetAll_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM board_posts`).WillReturnError(errors.New("down"))

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestPostgresUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE board_posts SET title = $2, content = $3, type = $4, corporate_only = $5, pinned = $6`)).
		WithArgs(int64(1), "edited", "body", "NOTICE", false, true).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(int64(1), "edited", "body", "NOTICE", int64(3), int64(9), false, true, now))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE board_posts SET title`)).
		WithArgs(int64(7), "t", "c", "GENERAL", false, false).
		WillReturnError(sql.ErrNoRows)

	p, err := repo.Update(context.Background(), 1,
		models.NewBoardPost{Title: "edited", Content: "body", Type: models.BoardPostNotice, Pinned: true})
	require.NoError(t, err)
	assert.Equal(t, "edited", p.Title)
	assert.Equal(t, int64(3), p.AuthorID)
	assert.Equal(t, int64(9), p.ViewCount)
	assert.True(t, p.Pinned)

	_, err = repo.Update(context.Background(), 7, models.NewBoardPost{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM board_posts WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM board_posts WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM board_posts`)).
		WithArgs(int64(2)).
		WillReturnError(errors.New("down"))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 1), common.ErrorNotFound)

	err := repo.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

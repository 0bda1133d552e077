package recipes

import (
	"context"
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

var recipeColumns = []string{"id", "title", "description", "cooking_time", "servings", "difficulty",
	"image_url", "hashtags", "author_id", "view_count", "created_at"}

func TestPostgresCreate_WritesChildrenInTx(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO recipes`)).
		WithArgs("Kimchi Stew", "Spicy and warming", 30, 4, "EASY", nil, `[]`, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "view_count", "created_at"}).AddRow(int64(1), int64(0), created))
	for i, name := range []string{"kimchi", "pork", "tofu"} {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO recipe_ingredients`)).
			WithArgs(int64(1), i+1, name, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	for i, d := range []string{"boil", "add pork", "add tofu"} {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO recipe_steps`)).
			WithArgs(int64(1), i+1, d, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	rc, err := repo.Create(context.Background(), kimchiStew(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), rc.ID)
	assert.Equal(t, int64(0), rc.ViewCount)
	assert.Equal(t, created, rc.CreatedAt)
	assert.Len(t, rc.Ingredients, 3)
	assert.Equal(t, 3, rc.Instructions[2].StepIndex)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreate_RollsBackOnChildFailure(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO recipes`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "view_count", "created_at"}).AddRow(int64(5), int64(0), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO recipe_ingredients`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), kimchiStew(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_AttachesChildren(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()
	img := "step.jpg"

	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipes r WHERE r.id = $1 ORDER BY r.id`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(int64(1), "Kimchi Stew", "d", 30, 4, "EASY", nil, []byte(`["korean","stew"]`), int64(1), int64(7), now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipe_ingredients ri JOIN recipes r`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "name", "amount"}).
			AddRow(int64(1), "kimchi", "300g").
			AddRow(int64(1), "pork", "200g"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipe_steps rs JOIN recipes r`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "step_index", "description", "image_url"}).
			AddRow(int64(1), 1, "boil", nil).
			AddRow(int64(1), 2, "add pork", img))

	rc, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyEasy, rc.Difficulty)
	assert.Nil(t, rc.ImageURL)
	assert.Equal(t, []string{"korean", "stew"}, rc.Hashtags)
	assert.Equal(t, int64(7), rc.ViewCount)
	assert.Equal(t, []models.RecipeIngredient{{Name: "kimchi", Amount: "300g"}, {Name: "pork", Amount: "200g"}}, rc.Ingredients)
	require.Len(t, rc.Instructions, 2)
	assert.Nil(t, rc.Instructions[0].ImageURL)
	require.NotNil(t, rc.Instructions[1].ImageURL)
	assert.Equal(t, img, *rc.Instructions[1].ImageURL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipes r WHERE r.id = $1`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	_, err := repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresGetByAuthor_GroupsChildrenPerRecipe(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM recipes r WHERE r.author_id = $1 ORDER BY r.id`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(recipeColumns).
			AddRow(int64(3), "A", "d", 10, 1, "EASY", nil, []byte(`[]`), int64(2), int64(0), now).
			AddRow(int64(8), "B", "d", 20, 2, "HARD", "b.jpg", []byte(`[]`), int64(2), int64(0), now))
	mock.ExpectQuery(`FROM recipe_ingredients`).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "name", "amount"}).
			AddRow(int64(3), "rice", "1 cup").
			AddRow(int64(8), "egg", "2").
			AddRow(int64(8), "salt", "pinch"))
	mock.ExpectQuery(`FROM recipe_steps`).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "step_index", "description", "image_url"}))

	got, err := repo.GetByAuthor(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Ingredients, 1)
	assert.Len(t, got[1].Ingredients, 2)
	assert.Empty(t, got[0].Instructions)
	require.NotNil(t, got[1].ImageURL)
	assert.Equal(t, "b.jpg", *got[1].ImageURL)
}

func TestPostgresGetAll_EmptySkipsChildQueries(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM recipes r\s+ORDER BY r.id`).
		WillReturnRows(sqlmock.NewRows(recipeColumns))

	got, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCountAndIncrement(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM recipes`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE recipes SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}).AddRow(int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE recipes`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	v, err := repo.IncrementViewCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	_, err = repo.IncrementViewCount(context.Background(), 2)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresCount_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`COUNT`).WillReturnError(errors.New("conn reset"))

	_, err := repo.Count(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestPostgresUpdate_ReplacesChildrenInTx(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	in := kimchiStew(99)
	in.Title = "Kimchi Jjigae"
	in.Ingredients = in.Ingredients[:1]
	in.Instructions = in.Instructions[:2]
	in.Hashtags = []string{"korean"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE recipes`)).
		WithArgs(int64(4), "Kimchi Jjigae", "Spicy and warming", 30, 4, "EASY", nil, `["korean"]`).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "view_count", "created_at"}).AddRow(int64(1), int64(12), created))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM recipe_ingredients WHERE recipe_id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM recipe_steps WHERE recipe_id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO recipe_ingredients`)).
		WithArgs(int64(4), 1, "kimchi", "300g").
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i, d := range []string{"boil", "add pork"} {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO recipe_steps`)).
			WithArgs(int64(4), i+1, d, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	rc, err := repo.Update(context.Background(), 4, in)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rc.ID)
	assert.Equal(t, int64(1), rc.AuthorID)
	assert.Equal(t, int64(12), rc.ViewCount)
	assert.Equal(t, created, rc.CreatedAt)
	assert.Len(t, rc.Ingredients, 1)
	assert.Len(t, rc.Instructions, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdate_NotFoundRollsBack(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE recipes`)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "view_count", "created_at"}))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 9, kimchiStew(1))
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM recipes WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM recipes WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 4))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), common.ErrorNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

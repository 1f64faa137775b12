package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookstack/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// The in-memory database lives per connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Book{}))
	return db
}

func seedCatalog(t *testing.T, repo BookRepository, owner uuid.UUID) {
	t.Helper()
	books := []model.Book{
		{Title: "The Hobbit", Author: "J. R. R. Tolkien", Genre: "Fantasy", PublicationDate: "1937-09-21"},
		{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", PublicationDate: "1965-08-01"},
		{Title: "Hobgoblin Tales", Author: "A. N. Other", Genre: "Fantasy", PublicationDate: "2001-01-01"},
		{Title: "Emma", Author: "Jane Austen", Genre: "Romance", PublicationDate: "1815-12-23"},
	}
	for i := range books {
		books[i].CreatedBy = owner
		require.NoError(t, repo.Create(context.Background(), &books[i]))
	}
}

func TestBookRepository_SearchTermIsCaseInsensitive(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedCatalog(t, repo, uuid.New())
	ctx := context.Background()

	got, err := repo.List(ctx, BookFilter{SearchTerm: "Hob"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hobgoblin Tales", got[0].Title)
	assert.Equal(t, "The Hobbit", got[1].Title)

	// Lower-cased term matches the same rows.
	got, err = repo.List(ctx, BookFilter{SearchTerm: "hob"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// The search also spans the author column.
	got, err = repo.List(ctx, BookFilter{SearchTerm: "tolkien"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Hobbit", got[0].Title)
}

func TestBookRepository_ExactFiltersAreANDCombined(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedCatalog(t, repo, uuid.New())
	ctx := context.Background()

	got, err := repo.List(ctx, BookFilter{Genre: "Fantasy"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(ctx, BookFilter{Genre: "Fantasy", Author: "J. R. R. Tolkien"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "The Hobbit", got[0].Title)

	// Search and exact filters combine: term OR-expansion AND genre.
	got, err = repo.List(ctx, BookFilter{SearchTerm: "Hob", Genre: "Romance"}, 10, 0, "title", "asc")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBookRepository_EmptyFilterMatchesEverything(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedCatalog(t, repo, uuid.New())

	got, err := repo.List(context.Background(), BookFilter{}, 10, 0, "title", "asc")
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestBookRepository_Pagination(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()
	owner := uuid.New()

	for i := 1; i <= 25; i++ {
		book := &model.Book{
			Title:           fmt.Sprintf("Book %02d", i),
			Author:          "Author",
			Genre:           "Fiction",
			PublicationDate: "2000-01-01",
			CreatedBy:       owner,
		}
		require.NoError(t, repo.Create(ctx, book))
	}

	// page=2, limit=10 yields records 11-20.
	got, err := repo.List(ctx, BookFilter{}, 10, 10, "title", "asc")
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, "Book 11", got[0].Title)
	assert.Equal(t, "Book 20", got[9].Title)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
}

func TestBookRepository_RejectsUnknownSortColumn(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	seedCatalog(t, repo, uuid.New())

	// An unlisted sort column falls back to created_at instead of being
	// interpolated into the query.
	_, err := repo.List(context.Background(), BookFilter{}, 10, 0, "title; DROP TABLE books", "asc")
	assert.NoError(t, err)
}

func TestBookRepository_UpdateAndDeleteByID(t *testing.T) {
	repo := NewBookRepository(newTestDB(t))
	ctx := context.Background()

	book := &model.Book{
		Title:           "Snow Crash",
		Author:          "Neal Stephenson",
		Genre:           "Science Fiction",
		PublicationDate: "1992-06-01",
		CreatedBy:       uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, book))

	updated, err := repo.UpdateByID(ctx, book.ID, map[string]interface{}{"genre": "Cyberpunk"})
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk", updated.Genre)
	assert.Equal(t, "Snow Crash", updated.Title)

	require.NoError(t, repo.DeleteByID(ctx, book.ID))
	_, err = repo.FindByID(ctx, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

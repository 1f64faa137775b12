package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstack/internal/model"
)

// bookSearchableColumns are the text columns a searchTerm matches against.
var bookSearchableColumns = []string{"title", "author", "genre"}

// bookSortableColumns whitelists ORDER BY targets.
var bookSortableColumns = map[string]bool{
	"title":            true,
	"author":           true,
	"genre":            true,
	"publication_date": true,
	"created_at":       true,
	"updated_at":       true,
}

// BookFilter holds the optional search and exact-match conditions of a
// list request. Zero values mean "no condition".
type BookFilter struct {
	SearchTerm      string
	Title           string
	Author          string
	Genre           string
	PublicationDate string
}

// BookRepository defines book persistence operations.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	List(ctx context.Context, filter BookFilter, limit, offset int, sortBy, sortOrder string) ([]model.Book, error)
	UpdateByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Book, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository builds a GORM-backed book repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List applies the combined predicate: searchTerm OR-matched across the
// searchable columns case-insensitively, exact filters AND-combined, and
// an empty filter matching everything.
func (r *bookRepository) List(ctx context.Context, filter BookFilter, limit, offset int, sortBy, sortOrder string) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	q = applyBookFilter(q, filter)

	if !bookSortableColumns[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	q = q.Order(sortBy + " " + sortOrder).Offset(offset).Limit(limit)

	var books []model.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func applyBookFilter(q *gorm.DB, filter BookFilter) *gorm.DB {
	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		or := q.Session(&gorm.Session{NewDB: true})
		for _, col := range bookSearchableColumns {
			or = or.Or("LOWER("+col+") LIKE ?", pattern)
		}
		q = q.Where(or)
	}
	if filter.Title != "" {
		q = q.Where("title = ?", filter.Title)
	}
	if filter.Author != "" {
		q = q.Where("author = ?", filter.Author)
	}
	if filter.Genre != "" {
		q = q.Where("genre = ?", filter.Genre)
	}
	if filter.PublicationDate != "" {
		q = q.Where("publication_date = ?", filter.PublicationDate)
	}
	return q
}

// UpdateByID applies a partial update and returns the fresh record.
func (r *bookRepository) UpdateByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Book, error) {
	if len(updates) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.Book{}).
			Where("id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

func (r *bookRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Book{}).Error
}

// Count returns the size of the whole collection, not the filtered set.
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstack/internal/cache"
	apperrors "bookstack/internal/errors"
	"bookstack/internal/model"
	"bookstack/internal/pagination"
	"bookstack/internal/repository"
)

const bookCacheTTL = 5 * time.Minute

// CreateBookInput carries the fields accepted when adding a book.
type CreateBookInput struct {
	Title           string
	Author          string
	Genre           string
	PublicationDate string
}

// UpdateBookInput carries the optional fields of a partial update.
type UpdateBookInput struct {
	Title           *string
	Author          *string
	Genre           *string
	PublicationDate *string
}

// BookService handles book catalog operations.
type BookService interface {
	Create(ctx context.Context, input CreateBookInput, creatorID uuid.UUID) (*model.Book, error)
	List(ctx context.Context, filter repository.BookFilter, opts pagination.Options) ([]model.Book, pagination.Meta, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Update(ctx context.Context, id, requesterID uuid.UUID, input UpdateBookInput) (*model.Book, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) (*model.Book, error)
}

type bookService struct {
	books repository.BookRepository
	cache *cache.Client
}

// NewBookService creates a new book service.
func NewBookService(books repository.BookRepository, cache *cache.Client) BookService {
	return &bookService{books: books, cache: cache}
}

func (s *bookService) cacheKey(id uuid.UUID) string {
	return "book:" + id.String()
}

// Create persists a new book stamped with the creator's identity.
func (s *bookService) Create(ctx context.Context, input CreateBookInput, creatorID uuid.UUID) (*model.Book, error) {
	book := &model.Book{
		Title:           input.Title,
		Author:          input.Author,
		Genre:           input.Genre,
		PublicationDate: input.PublicationDate,
		CreatedBy:       creatorID,
	}
	if err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// List returns a page of books matching the filter. Meta.Total reports
// the size of the whole collection rather than the filtered set,
// preserving the behavior callers already depend on.
func (s *bookService) List(ctx context.Context, filter repository.BookFilter, opts pagination.Options) ([]model.Book, pagination.Meta, error) {
	page, limit, offset, sortBy, sortOrder := opts.Normalize()

	books, err := s.books.List(ctx, filter, limit, offset, sortBy, sortOrder)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("list books: %w", err)
	}

	total, err := s.books.Count(ctx)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("count books: %w", err)
	}

	return books, pagination.Meta{Page: page, Limit: limit, Total: total}, nil
}

// Get retrieves a book by id, consulting the cache first.
func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Book
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	if payload, err := json.Marshal(book); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, bookCacheTTL)
	}
	return book, nil
}

// Update applies a partial update after the ownership check.
func (s *bookService) Update(ctx context.Context, id, requesterID uuid.UUID, input UpdateBookInput) (*model.Book, error) {
	if _, err := s.checkOwnership(ctx, id, requesterID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Author != nil {
		updates["author"] = *input.Author
	}
	if input.Genre != nil {
		updates["genre"] = *input.Genre
	}
	if input.PublicationDate != nil {
		updates["publication_date"] = *input.PublicationDate
	}

	book, err := s.books.UpdateByID(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return book, nil
}

// Delete removes a book after the ownership check and returns the
// deleted representation.
func (s *bookService) Delete(ctx context.Context, id, requesterID uuid.UUID) (*model.Book, error) {
	book, err := s.checkOwnership(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if err := s.books.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("delete book: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return book, nil
}

// checkOwnership resolves the book and requires the requester to be its
// creator. The same gate guards update and delete.
func (s *bookService) checkOwnership(ctx context.Context, id, requesterID uuid.UUID) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	if book.CreatedBy != requesterID {
		return nil, apperrors.ErrNotBookOwner
	}
	return book, nil
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "bookstack/internal/errors"
	"bookstack/internal/model"
	"bookstack/internal/pagination"
	"bookstack/internal/repository"
)

// MockBookRepository is a mock implementation of BookRepository.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, filter repository.BookFilter, limit, offset int, sortBy, sortOrder string) ([]model.Book, error) {
	args := m.Called(ctx, filter, limit, offset, sortBy, sortOrder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) UpdateByID(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Book, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookService_CreateStampsCreator(t *testing.T) {
	creatorID := uuid.New()
	mockRepo := new(MockBookRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Book) bool {
		return b.CreatedBy == creatorID && b.Title == "The Hobbit"
	})).Return(nil)

	svc := NewBookService(mockRepo, nil)
	book, err := svc.Create(context.Background(), CreateBookInput{
		Title:           "The Hobbit",
		Author:          "J. R. R. Tolkien",
		Genre:           "Fantasy",
		PublicationDate: "1937-09-21",
	}, creatorID)

	require.NoError(t, err)
	assert.Equal(t, creatorID, book.CreatedBy)
	mockRepo.AssertExpectations(t)
}

func TestBookService_OwnershipGate(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	bookID := uuid.New()
	stored := &model.Book{ID: bookID, Title: "Dune", CreatedBy: ownerID}

	newTitle := "Dune (Revised)"

	t.Run("non-owner update is forbidden", func(t *testing.T) {
		mockRepo := new(MockBookRepository)
		mockRepo.On("FindByID", mock.Anything, bookID).Return(stored, nil)

		svc := NewBookService(mockRepo, nil)
		_, err := svc.Update(context.Background(), bookID, strangerID, UpdateBookInput{Title: &newTitle})
		assert.ErrorIs(t, err, apperrors.ErrNotBookOwner)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner delete is forbidden", func(t *testing.T) {
		mockRepo := new(MockBookRepository)
		mockRepo.On("FindByID", mock.Anything, bookID).Return(stored, nil)

		svc := NewBookService(mockRepo, nil)
		_, err := svc.Delete(context.Background(), bookID, strangerID)
		assert.ErrorIs(t, err, apperrors.ErrNotBookOwner)
	})

	t.Run("owner update succeeds", func(t *testing.T) {
		updated := &model.Book{ID: bookID, Title: newTitle, CreatedBy: ownerID}
		mockRepo := new(MockBookRepository)
		mockRepo.On("FindByID", mock.Anything, bookID).Return(stored, nil)
		mockRepo.On("UpdateByID", mock.Anything, bookID, map[string]interface{}{"title": newTitle}).Return(updated, nil)

		svc := NewBookService(mockRepo, nil)
		book, err := svc.Update(context.Background(), bookID, ownerID, UpdateBookInput{Title: &newTitle})
		require.NoError(t, err)
		assert.Equal(t, newTitle, book.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("owner delete returns the removed book", func(t *testing.T) {
		mockRepo := new(MockBookRepository)
		mockRepo.On("FindByID", mock.Anything, bookID).Return(stored, nil)
		mockRepo.On("DeleteByID", mock.Anything, bookID).Return(nil)

		svc := NewBookService(mockRepo, nil)
		book, err := svc.Delete(context.Background(), bookID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, bookID, book.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing book yields not found", func(t *testing.T) {
		mockRepo := new(MockBookRepository)
		mockRepo.On("FindByID", mock.Anything, bookID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewBookService(mockRepo, nil)
		_, err := svc.Update(context.Background(), bookID, ownerID, UpdateBookInput{Title: &newTitle})
		assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
	})
}

func TestBookService_ListMetaUsesCollectionTotal(t *testing.T) {
	mockRepo := new(MockBookRepository)
	filter := repository.BookFilter{SearchTerm: "Hob"}
	// One match in a collection of 25: total reports the collection size.
	mockRepo.On("List", mock.Anything, filter, 10, 0, "created_at", "desc").
		Return([]model.Book{{Title: "The Hobbit"}}, nil)
	mockRepo.On("Count", mock.Anything).Return(int64(25), nil)

	svc := NewBookService(mockRepo, nil)
	books, meta, err := svc.List(context.Background(), filter, pagination.Options{})

	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 10, Total: 25}, meta)
	mockRepo.AssertExpectations(t)
}

func TestBookService_GetMissing(t *testing.T) {
	bookID := uuid.New()
	mockRepo := new(MockBookRepository)
	mockRepo.On("FindByID", mock.Anything, bookID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewBookService(mockRepo, nil)
	_, err := svc.Get(context.Background(), bookID)
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

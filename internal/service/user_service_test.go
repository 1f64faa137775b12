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
)

func TestUserService_UpdateNeverTouchesPasswordHash(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Email: "reader@example.com", PasswordHash: "$2a$10$stored"}

	email := "new@example.com"
	first := "New"

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("UpdateByID", mock.Anything, userID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, hasHash := updates["password_hash"]
		_, hasPassword := updates["password"]
		return !hasHash && !hasPassword
	})).Return(stored, nil)

	svc := NewUserService(mockRepo, nil)
	_, err := svc.Update(context.Background(), userID, UpdateUserInput{Email: &email, FirstName: &first})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateRejectsUnknownRole(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Role: model.RoleBuyer}
	badRole := "root"

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("UpdateByID", mock.Anything, userID, mock.MatchedBy(func(updates map[string]interface{}) bool {
		_, hasRole := updates["role"]
		return !hasRole
	})).Return(stored, nil)

	svc := NewUserService(mockRepo, nil)
	_, err := svc.Update(context.Background(), userID, UpdateUserInput{Role: &badRole})

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetMissing(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	_, err := svc.Get(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_DeleteMissing(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	err := svc.Delete(context.Background(), userID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
